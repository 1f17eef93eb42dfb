package lab

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Panel maps to the lab_panel table: one timestamped snapshot of the
// patient's laboratory values. Panels are append-only history; a new
// draw inserts a new row, and "current" means the row inserted last.
type Panel struct {
	ID        int64  `db:"id" json:"id"`
	PatientID int64  `db:"patient_id" json:"patient_id"`
	CreatedAt string `db:"created_at" json:"created_at"`

	PPD *string `db:"ppd" json:"ppd,omitempty"`

	CRP         *float64 `db:"crp" json:"crp,omitempty"`
	WBC         *float64 `db:"wbc" json:"wbc,omitempty"`
	Lymphocytes *float64 `db:"lymphocytes" json:"lymphocytes,omitempty"`
	Neutrophils *float64 `db:"neutrophils" json:"neutrophils,omitempty"`
	PCT         *float64 `db:"pct" json:"pct,omitempty"`

	Glucose    *float64 `db:"glucose" json:"glucose,omitempty"`
	Sodium     *float64 `db:"sodium" json:"sodium,omitempty"`
	Chloride   *float64 `db:"chloride" json:"chloride,omitempty"`
	Phosphorus *float64 `db:"phosphorus" json:"phosphorus,omitempty"`
	Magnesium  *float64 `db:"magnesium" json:"magnesium,omitempty"`

	AST *float64 `db:"ast" json:"ast,omitempty"`
	ALT *float64 `db:"alt" json:"alt,omitempty"`
	GGT *float64 `db:"ggt" json:"ggt,omitempty"`
	ALP *float64 `db:"alp" json:"alp,omitempty"`

	TotalBilirubin  *float64 `db:"total_bilirubin" json:"total_bilirubin,omitempty"`
	DirectBilirubin *float64 `db:"direct_bilirubin" json:"direct_bilirubin,omitempty"`
	Albumin         *float64 `db:"albumin" json:"albumin,omitempty"`

	Creatinine *float64 `db:"creatinine" json:"creatinine,omitempty"`
	BUN        *float64 `db:"bun" json:"bun,omitempty"`
	EGFR       *float64 `db:"egfr" json:"egfr,omitempty"`
}

func (p *Panel) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.PatientID, validation.Required),
	)
}
