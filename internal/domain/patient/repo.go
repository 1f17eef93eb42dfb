package patient

import "context"

type Repository interface {
	Create(ctx context.Context, p *Patient) (int64, error)
	GetByID(ctx context.Context, id int64) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id int64) error

	// Search matches the query case-insensitively against first and last
	// name and as a substring of the national id. An empty query returns
	// every patient ordered by id.
	Search(ctx context.Context, query string) ([]*Patient, error)

	// NationalIDInUse reports whether a different patient (any patient
	// when excludeID is zero) already holds the national id.
	NationalIDInUse(ctx context.Context, nationalID string, excludeID int64) (bool, error)
}
