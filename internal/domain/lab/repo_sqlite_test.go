package lab

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/SelinElifGur/enfeksiyon/internal/platform/db"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	conn, err := db.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	if err := db.EnsureSchema(ctx, conn); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return conn
}

func f(v float64) *float64 { return &v }

func TestRepoRoundTrip(t *testing.T) {
	repo := NewRepo(openTestDB(t))
	ctx := context.Background()

	ppd := "5mm"
	p := &Panel{
		PatientID:  1,
		CreatedAt:  "2024-01-10T08:00:00Z",
		PPD:        &ppd,
		CRP:        f(42.5),
		WBC:        f(11.2),
		Creatinine: f(0.7),
	}
	id, err := repo.Create(ctx, p)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CRP == nil || *got.CRP != 42.5 {
		t.Errorf("crp = %v", got.CRP)
	}
	if got.PPD == nil || *got.PPD != "5mm" {
		t.Errorf("ppd = %v", got.PPD)
	}
	if got.Glucose != nil {
		t.Errorf("glucose = %v, want nil for an unmeasured value", got.Glucose)
	}
}

// Three draws for the same patient; the latest one wins and history
// stays readable in full.
func TestRepoLatestByPatient(t *testing.T) {
	repo := NewRepo(openTestDB(t))
	ctx := context.Background()

	for i, crp := range []float64{120, 60, 12} {
		_, err := repo.Create(ctx, &Panel{
			PatientID: 1,
			CreatedAt: fmt.Sprintf("2024-01-1%dT08:00:00Z", i),
			CRP:       f(crp),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	latest, err := repo.LatestByPatient(ctx, 1)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.CRP == nil || *latest.CRP != 12 {
		t.Errorf("latest crp = %v, want 12", latest.CRP)
	}

	all, err := repo.ListByPatient(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("history length = %d, want 3", len(all))
	}
	if *all[0].CRP != 120 || *all[2].CRP != 12 {
		t.Error("history out of insertion order")
	}
}

func TestRepoLatestByPatient_Empty(t *testing.T) {
	repo := NewRepo(openTestDB(t))

	if _, err := repo.LatestByPatient(context.Background(), 1); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestRepoDeleteByPatient(t *testing.T) {
	repo := NewRepo(openTestDB(t))
	ctx := context.Background()

	for _, patientID := range []int64{1, 1, 2} {
		if _, err := repo.Create(ctx, &Panel{PatientID: patientID, CreatedAt: "2024-01-10T08:00:00Z"}); err != nil {
			t.Fatal(err)
		}
	}

	if err := repo.DeleteByPatient(ctx, 1); err != nil {
		t.Fatalf("delete by patient: %v", err)
	}

	gone, err := repo.ListByPatient(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(gone) != 0 {
		t.Errorf("patient 1 panels = %d, want 0", len(gone))
	}
	kept, err := repo.ListByPatient(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(kept) != 1 {
		t.Errorf("patient 2 panels = %d, want 1", len(kept))
	}
}
