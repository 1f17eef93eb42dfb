package intake

import (
	"context"
	"time"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create appends a new questionnaire. A patient can have any number
// of them; re-submitting never overwrites an earlier one.
func (s *Service) Create(ctx context.Context, q *Questionnaire) (int64, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}
	if q.CreatedAt == "" {
		q.CreatedAt = s.now().Format(time.RFC3339)
	}
	return s.repo.Create(ctx, q)
}

func (s *Service) Get(ctx context.Context, id int64) (*Questionnaire, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*Questionnaire, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) LatestByPatient(ctx context.Context, patientID int64) (*Questionnaire, error) {
	return s.repo.LatestByPatient(ctx, patientID)
}
