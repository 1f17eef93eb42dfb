package culture

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Culture maps to the culture table: one organism grown from one patient
// specimen.
type Culture struct {
	ID             int64   `db:"id" json:"id"`
	PatientID      int64   `db:"patient_id" json:"patient_id"`
	SpecimenSource *string `db:"specimen_source" json:"specimen_source,omitempty"`
	Organism       string  `db:"organism" json:"organism"`
	GrownAt        *string `db:"grown_at" json:"grown_at,omitempty"`
}

func (c *Culture) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.PatientID, validation.Required),
		validation.Field(&c.Organism, validation.Required),
	)
}

// Susceptibility outcomes.
const (
	OutcomeSusceptible  = "Susceptible"
	OutcomeIntermediate = "Intermediate"
	OutcomeResistant    = "Resistant"
)

// Susceptibility maps to the susceptibility table: the measured response
// of one culture to one antibiotic.
type Susceptibility struct {
	ID         int64  `db:"id" json:"id"`
	CultureID  int64  `db:"culture_id" json:"culture_id"`
	Antibiotic string `db:"antibiotic" json:"antibiotic"`
	Outcome    string `db:"outcome" json:"outcome"`
}

func (s *Susceptibility) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.CultureID, validation.Required),
		validation.Field(&s.Antibiotic, validation.Required),
		validation.Field(&s.Outcome, validation.Required,
			validation.In(OutcomeSusceptible, OutcomeIntermediate, OutcomeResistant)),
	)
}
