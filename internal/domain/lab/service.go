package lab

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

// Create appends a new panel snapshot. Existing panels are never
// mutated; history stays intact.
func (s *Service) Create(ctx context.Context, p *Panel) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if p.CreatedAt == "" {
		p.CreatedAt = s.now().Format(time.RFC3339)
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id int64) (*Panel, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*Panel, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) LatestByPatient(ctx context.Context, patientID int64) (*Panel, error) {
	return s.repo.LatestByPatient(ctx, patientID)
}
