package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/SelinElifGur/enfeksiyon/internal/config"
	"github.com/SelinElifGur/enfeksiyon/internal/platform/db"
)

func newTestRouter(t *testing.T) *echo.Echo {
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
	cfg := &config.Config{
		Port:        "0",
		Env:         "test",
		CORSOrigins: []string{"http://localhost:3000"},
	}
	return newRouter(conn, cfg, zerolog.Nop())
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoints(t *testing.T) {
	e := newTestRouter(t)

	if rec := do(t, e, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Errorf("/health = %d", rec.Code)
	}
	if rec := do(t, e, http.MethodGet, "/health/db", ""); rec.Code != http.StatusOK {
		t.Errorf("/health/db = %d", rec.Code)
	}
}

func TestPatientLifecycleOverHTTP(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodPost, "/api/v1/patients",
		`{"national_id":"12345678901","first_name":"Ayşe","last_name":"Yılmaz"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create patient = %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}

	// Duplicate national id is a conflict
	rec = do(t, e, http.MethodPost, "/api/v1/patients",
		`{"national_id":"12345678901","first_name":"Mehmet","last_name":"Demir"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate national id = %d, want 409", rec.Code)
	}

	// Invalid national id is a bad request
	rec = do(t, e, http.MethodPost, "/api/v1/patients",
		`{"national_id":"123","first_name":"Ali","last_name":"Kaya"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("short national id = %d, want 400", rec.Code)
	}

	// Search finds the patient case-insensitively
	rec = do(t, e, http.MethodGet, "/api/v1/patients?q=AYŞE", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("search = %d", rec.Code)
	}
	var page struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatal(err)
	}
	if page.Total != 1 {
		t.Errorf("search total = %d, want 1", page.Total)
	}

	// Missing patient is 404
	rec = do(t, e, http.MethodGet, "/api/v1/patients/9999", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing patient = %d, want 404", rec.Code)
	}
}

func TestCascadeDeleteOverHTTP(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodPost, "/api/v1/patients",
		`{"national_id":"12345678901","first_name":"Ayşe","last_name":"Yılmaz"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create patient = %d", rec.Code)
	}
	var p struct {
		ID int64 `json:"id"`
	}
	json.Unmarshal(rec.Body.Bytes(), &p)

	rec = do(t, e, http.MethodPost, "/api/v1/cultures",
		`{"patient_id":1,"organism":"E. coli","specimen_source":"idrar"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create culture = %d: %s", rec.Code, rec.Body.String())
	}
	var c struct {
		ID int64 `json:"id"`
	}
	json.Unmarshal(rec.Body.Bytes(), &c)

	rec = do(t, e, http.MethodPost, "/api/v1/cultures/1/results",
		`{"antibiotic":"Meropenem","outcome":"Susceptible"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add result = %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, e, http.MethodPost, "/api/v1/drug-courses",
		`{"patient_id":1,"drug":"Meropenem","start_date":"2024-01-10"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create drug course = %d", rec.Code)
	}

	rec = do(t, e, http.MethodPost, "/api/v1/lab-panels",
		`{"patient_id":1,"crp":42.5}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create lab panel = %d", rec.Code)
	}

	rec = do(t, e, http.MethodPost, "/api/v1/questionnaires",
		`{"patient_id":1,"fever":"var"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create questionnaire = %d", rec.Code)
	}

	// The report sees everything
	rec = do(t, e, http.MethodGet, "/api/v1/patients/1/report", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("report = %d", rec.Code)
	}
	var sum struct {
		Cultures    []json.RawMessage `json:"cultures"`
		DrugCourses []json.RawMessage `json:"drug_courses"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &sum); err != nil {
		t.Fatal(err)
	}
	if len(sum.Cultures) != 1 || len(sum.DrugCourses) != 1 {
		t.Errorf("report cultures = %d, courses = %d", len(sum.Cultures), len(sum.DrugCourses))
	}

	rec = do(t, e, http.MethodGet, "/api/v1/patients/1/report.html", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("html report = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Yılmaz") {
		t.Error("html report missing patient name")
	}

	// Delete the patient and verify the dependents went with it
	rec = do(t, e, http.MethodDelete, "/api/v1/patients/1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete patient = %d", rec.Code)
	}

	for _, path := range []string{
		"/api/v1/cultures?patient_id=1",
		"/api/v1/drug-courses?patient_id=1",
		"/api/v1/lab-panels?patient_id=1",
		"/api/v1/questionnaires?patient_id=1",
	} {
		rec = do(t, e, http.MethodGet, path, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s = %d", path, rec.Code)
		}
		var rows []json.RawMessage
		if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if len(rows) != 0 {
			t.Errorf("%s returned %d rows after cascade", path, len(rows))
		}
	}

	rec = do(t, e, http.MethodGet, "/api/v1/patients/1", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("deleted patient = %d, want 404", rec.Code)
	}
}

func TestAppendOnlyStoresRejectUpdates(t *testing.T) {
	e := newTestRouter(t)

	do(t, e, http.MethodPost, "/api/v1/patients",
		`{"national_id":"12345678901","first_name":"Ayşe","last_name":"Yılmaz"}`)
	do(t, e, http.MethodPost, "/api/v1/lab-panels", `{"patient_id":1,"crp":42.5}`)
	do(t, e, http.MethodPost, "/api/v1/questionnaires", `{"patient_id":1}`)

	// No PUT routes exist for the append-only stores
	rec := do(t, e, http.MethodPut, "/api/v1/lab-panels/1", `{"patient_id":1,"crp":1}`)
	if rec.Code != http.StatusMethodNotAllowed && rec.Code != http.StatusNotFound {
		t.Errorf("PUT lab panel = %d, want 404/405", rec.Code)
	}
	rec = do(t, e, http.MethodPut, "/api/v1/questionnaires/1", `{"patient_id":1}`)
	if rec.Code != http.StatusMethodNotAllowed && rec.Code != http.StatusNotFound {
		t.Errorf("PUT questionnaire = %d, want 404/405", rec.Code)
	}
}

func TestLatestEndpoints(t *testing.T) {
	e := newTestRouter(t)

	do(t, e, http.MethodPost, "/api/v1/patients",
		`{"national_id":"12345678901","first_name":"Ayşe","last_name":"Yılmaz"}`)
	for _, crp := range []string{"120", "60", "12"} {
		rec := do(t, e, http.MethodPost, "/api/v1/lab-panels", `{"patient_id":1,"crp":`+crp+`}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create panel = %d", rec.Code)
		}
	}

	rec := do(t, e, http.MethodGet, "/api/v1/lab-panels/latest?patient_id=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("latest panel = %d", rec.Code)
	}
	var panel struct {
		CRP *float64 `json:"crp"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &panel); err != nil {
		t.Fatal(err)
	}
	if panel.CRP == nil || *panel.CRP != 12 {
		t.Errorf("latest crp = %v, want 12", panel.CRP)
	}

	// No questionnaire yet
	rec = do(t, e, http.MethodGet, "/api/v1/questionnaires/latest?patient_id=1", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("latest questionnaire with none = %d, want 404", rec.Code)
	}
}
