package culture

import "context"

type Repository interface {
	Create(ctx context.Context, c *Culture) (int64, error)
	GetByID(ctx context.Context, id int64) (*Culture, error)
	Update(ctx context.Context, c *Culture) error
	Delete(ctx context.Context, id int64) error
	ListByPatient(ctx context.Context, patientID int64) ([]*Culture, error)

	// DeleteByPatient removes the susceptibility rows of every culture
	// the patient owns, then the cultures. Child rows go first because
	// the store has no cascading foreign keys.
	DeleteByPatient(ctx context.Context, patientID int64) error

	// Susceptibility results
	AddResult(ctx context.Context, s *Susceptibility) (int64, error)
	GetResult(ctx context.Context, id int64) (*Susceptibility, error)
	UpdateResult(ctx context.Context, s *Susceptibility) error
	DeleteResult(ctx context.Context, id int64) error
	ListResults(ctx context.Context, cultureID int64) ([]*Susceptibility, error)
	DeleteResultsByCulture(ctx context.Context, cultureID int64) error
}
