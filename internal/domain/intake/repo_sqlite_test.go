package intake

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

func str(v string) *string { return &v }

func TestRepoRoundTrip(t *testing.T) {
	repo := NewRepo(openTestDB(t))
	ctx := context.Background()

	size := int64(5)
	q := &Questionnaire{
		PatientID:        1,
		CreatedAt:        "2024-01-10T08:00:00Z",
		Fever:            str("var, 39 dereceye kadar"),
		Cough:            str("kuru"),
		HouseholdSize:    &size,
		AnimalContact:    str("var"),
		AnimalNote:       str("evde kedi"),
		Consanguinity:    str("yok"),
		BloodPressure:    str("110/70"),
		GeneralCondition: str("orta"),
		ClinicalNotes:    str("izleme devam"),
	}
	id, err := repo.Create(ctx, q)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Fever == nil || *got.Fever != "var, 39 dereceye kadar" {
		t.Errorf("fever = %v", got.Fever)
	}
	if got.HouseholdSize == nil || *got.HouseholdSize != 5 {
		t.Errorf("household_size = %v", got.HouseholdSize)
	}
	if got.AnimalNote == nil || *got.AnimalNote != "evde kedi" {
		t.Errorf("animal_note = %v", got.AnimalNote)
	}
	if got.Rash != nil {
		t.Errorf("rash = %v, want nil for an unanswered question", got.Rash)
	}
}

func TestRepoLatestByPatient(t *testing.T) {
	repo := NewRepo(openTestDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		q := &Questionnaire{
			PatientID:     1,
			CreatedAt:     fmt.Sprintf("2024-01-1%dT08:00:00Z", i),
			ClinicalNotes: str(fmt.Sprintf("vizit %d", i+1)),
		}
		if _, err := repo.Create(ctx, q); err != nil {
			t.Fatal(err)
		}
	}

	latest, err := repo.LatestByPatient(ctx, 1)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.ClinicalNotes == nil || *latest.ClinicalNotes != "vizit 3" {
		t.Errorf("latest notes = %v, want vizit 3", latest.ClinicalNotes)
	}

	all, err := repo.ListByPatient(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("history length = %d, want 3", len(all))
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
		q := &Questionnaire{PatientID: patientID, CreatedAt: "2024-01-10T08:00:00Z"}
		if _, err := repo.Create(ctx, q); err != nil {
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
		t.Errorf("patient 1 questionnaires = %d, want 0", len(gone))
	}
	kept, err := repo.ListByPatient(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(kept) != 1 {
		t.Errorf("patient 2 questionnaires = %d, want 1", len(kept))
	}
}
