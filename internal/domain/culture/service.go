package culture

import (
	"context"

	"github.com/SelinElifGur/enfeksiyon/internal/platform/db"
)

type Service struct {
	repo Repository
	tx   db.TxRunner
}

func NewService(repo Repository, tx db.TxRunner) *Service {
	return &Service{repo: repo, tx: tx}
}

func (s *Service) Create(ctx context.Context, c *Culture) (int64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, c)
}

func (s *Service) Get(ctx context.Context, id int64) (*Culture, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, c *Culture) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, c)
}

// Delete removes the culture together with its susceptibility results,
// results first, inside one transaction. Sibling cultures of the same
// patient are untouched.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.repo.DeleteResultsByCulture(ctx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, id)
	})
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*Culture, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) AddResult(ctx context.Context, r *Susceptibility) (int64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	return s.repo.AddResult(ctx, r)
}

func (s *Service) GetResult(ctx context.Context, id int64) (*Susceptibility, error) {
	return s.repo.GetResult(ctx, id)
}

func (s *Service) UpdateResult(ctx context.Context, r *Susceptibility) error {
	if err := r.Validate(); err != nil {
		return err
	}
	return s.repo.UpdateResult(ctx, r)
}

func (s *Service) DeleteResult(ctx context.Context, id int64) error {
	return s.repo.DeleteResult(ctx, id)
}

func (s *Service) ListResults(ctx context.Context, cultureID int64) ([]*Susceptibility, error) {
	return s.repo.ListResults(ctx, cultureID)
}
