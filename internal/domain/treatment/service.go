package treatment

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, d *DrugCourse) (int64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, d)
}

func (s *Service) Get(ctx context.Context, id int64) (*DrugCourse, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, d *DrugCourse) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, d)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*DrugCourse, error) {
	return s.repo.ListByPatient(ctx, patientID)
}
