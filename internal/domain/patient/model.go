package patient

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Patient maps to the patient table.
type Patient struct {
	ID         int64   `db:"id" json:"id"`
	NationalID string  `db:"national_id" json:"national_id"`
	FirstName  string  `db:"first_name" json:"first_name"`
	LastName   string  `db:"last_name" json:"last_name"`
	BirthDate  *string `db:"birth_date" json:"birth_date,omitempty"`
	Ward       *string `db:"ward" json:"ward,omitempty"`
}

// TC kimlik numbers are always 11 digits.
var nationalIDPattern = regexp.MustCompile(`^[0-9]{11}$`)

func (p *Patient) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.NationalID, validation.Required,
			validation.Match(nationalIDPattern).Error("must be 11 digits")),
		validation.Field(&p.FirstName, validation.Required),
		validation.Field(&p.LastName, validation.Required),
	)
}
