package treatment

import "context"

type Repository interface {
	Create(ctx context.Context, d *DrugCourse) (int64, error)
	GetByID(ctx context.Context, id int64) (*DrugCourse, error)
	Update(ctx context.Context, d *DrugCourse) error
	Delete(ctx context.Context, id int64) error
	ListByPatient(ctx context.Context, patientID int64) ([]*DrugCourse, error)
	DeleteByPatient(ctx context.Context, patientID int64) error
}
