package treatment

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DrugCourse maps to the drug_course table: one administered antibiotic
// with its start/end window and dosage. EndDate stays nil while the
// course is still running.
type DrugCourse struct {
	ID        int64   `db:"id" json:"id"`
	PatientID int64   `db:"patient_id" json:"patient_id"`
	Drug      string  `db:"drug" json:"drug"`
	StartDate string  `db:"start_date" json:"start_date"`
	EndDate   *string `db:"end_date" json:"end_date,omitempty"`
	Dosage    *string `db:"dosage" json:"dosage,omitempty"`
}

func (d *DrugCourse) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.PatientID, validation.Required),
		validation.Field(&d.Drug, validation.Required),
		validation.Field(&d.StartDate, validation.Required),
	)
}
