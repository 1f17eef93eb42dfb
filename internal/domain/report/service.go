// Package report assembles the per-patient clinical summary out of the
// other domain stores. It owns no table of its own.
package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/SelinElifGur/enfeksiyon/internal/domain/culture"
	"github.com/SelinElifGur/enfeksiyon/internal/domain/intake"
	"github.com/SelinElifGur/enfeksiyon/internal/domain/lab"
	"github.com/SelinElifGur/enfeksiyon/internal/domain/patient"
	"github.com/SelinElifGur/enfeksiyon/internal/domain/treatment"
	"github.com/SelinElifGur/enfeksiyon/internal/platform/db"
)

// CultureReport pairs a culture with its susceptibility results.
type CultureReport struct {
	Culture *culture.Culture          `json:"culture"`
	Results []*culture.Susceptibility `json:"results"`
}

// Summary is the complete clinical picture of one patient: identity,
// the latest intake questionnaire and lab panel, every culture with
// its antibiogram, and the drug history.
type Summary struct {
	Patient       *patient.Patient        `json:"patient"`
	Questionnaire *intake.Questionnaire   `json:"questionnaire,omitempty"`
	LabPanel      *lab.Panel              `json:"lab_panel,omitempty"`
	Cultures      []CultureReport         `json:"cultures"`
	DrugCourses   []*treatment.DrugCourse `json:"drug_courses"`
}

type Service struct {
	patients   patient.Repository
	cultures   culture.Repository
	treatments treatment.Repository
	labs       lab.Repository
	intakes    intake.Repository
}

func NewService(
	patients patient.Repository,
	cultures culture.Repository,
	treatments treatment.Repository,
	labs lab.Repository,
	intakes intake.Repository,
) *Service {
	return &Service{
		patients:   patients,
		cultures:   cultures,
		treatments: treatments,
		labs:       labs,
		intakes:    intakes,
	}
}

// Summary builds the patient summary. A patient with no questionnaire
// or no lab panel yet is still reportable; those sections come back nil.
func (s *Service) Summary(ctx context.Context, patientID int64) (*Summary, error) {
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	sum := &Summary{Patient: p}

	sum.Questionnaire, err = s.intakes.LatestByPatient(ctx, patientID)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("latest questionnaire: %w", err)
	}

	sum.LabPanel, err = s.labs.LatestByPatient(ctx, patientID)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("latest lab panel: %w", err)
	}

	cultures, err := s.cultures.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("list cultures: %w", err)
	}
	sum.Cultures = make([]CultureReport, 0, len(cultures))
	for _, c := range cultures {
		results, err := s.cultures.ListResults(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("list results of culture %d: %w", c.ID, err)
		}
		sum.Cultures = append(sum.Cultures, CultureReport{Culture: c, Results: results})
	}

	sum.DrugCourses, err = s.treatments.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("list drug courses: %w", err)
	}

	return sum, nil
}
