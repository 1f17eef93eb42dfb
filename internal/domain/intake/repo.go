package intake

import "context"

// Repository persists intake questionnaires. No Update by design: a
// questionnaire is an immutable snapshot, a corrected interview is a
// new row.
type Repository interface {
	Create(ctx context.Context, q *Questionnaire) (int64, error)
	GetByID(ctx context.Context, id int64) (*Questionnaire, error)
	Delete(ctx context.Context, id int64) error
	ListByPatient(ctx context.Context, patientID int64) ([]*Questionnaire, error)
	LatestByPatient(ctx context.Context, patientID int64) (*Questionnaire, error)
	DeleteByPatient(ctx context.Context, patientID int64) error
}
