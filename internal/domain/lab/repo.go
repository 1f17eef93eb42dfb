package lab

import "context"

// Repository persists lab panels. There is deliberately no Update: a
// panel is an immutable snapshot, corrections are new rows.
type Repository interface {
	Create(ctx context.Context, p *Panel) (int64, error)
	GetByID(ctx context.Context, id int64) (*Panel, error)
	Delete(ctx context.Context, id int64) error
	ListByPatient(ctx context.Context, patientID int64) ([]*Panel, error)
	LatestByPatient(ctx context.Context, patientID int64) (*Panel, error)
	DeleteByPatient(ctx context.Context, patientID int64) error
}
