package patient

import (
	"context"
	"fmt"

	"github.com/SelinElifGur/enfeksiyon/internal/platform/db"
)

// DependentDeleter removes every row of one dependent record kind owned
// by a patient. The culture deleter also takes out susceptibility rows,
// so child tables always empty before their parent.
type DependentDeleter interface {
	DeleteByPatient(ctx context.Context, patientID int64) error
}

type Service struct {
	repo       Repository
	tx         db.TxRunner
	dependents []DependentDeleter
}

// NewService wires the patient repository with the deleters for every
// record kind owned by a patient. Deleters run in registration order
// during a cascade.
func NewService(repo Repository, tx db.TxRunner, dependents ...DependentDeleter) *Service {
	return &Service{repo: repo, tx: tx, dependents: dependents}
}

func (s *Service) Create(ctx context.Context, p *Patient) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	taken, err := s.repo.NationalIDInUse(ctx, p.NationalID, 0)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, fmt.Errorf("national id %s: %w", p.NationalID, db.ErrDuplicate)
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id int64) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	if err := p.Validate(); err != nil {
		return err
	}
	taken, err := s.repo.NationalIDInUse(ctx, p.NationalID, p.ID)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("national id %s: %w", p.NationalID, db.ErrDuplicate)
	}
	return s.repo.Update(ctx, p)
}

// Delete removes the patient and everything the patient owns, child rows
// first, inside one transaction. The store has no cascading foreign keys,
// so a partial delete would strand orphans; the transaction closes that
// gap. Deleting an id that is already gone is a no-op.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, dep := range s.dependents {
			if err := dep.DeleteByPatient(ctx, id); err != nil {
				return err
			}
		}
		return s.repo.Delete(ctx, id)
	})
}

func (s *Service) Search(ctx context.Context, query string) ([]*Patient, error) {
	return s.repo.Search(ctx, query)
}
