package intake

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Questionnaire maps to the questionnaire table: one timestamped
// snapshot of the intake interview. Like lab panels, questionnaires are
// append-only history; every saved form inserts a new row and "current"
// means the row inserted last. Most answers are optional free text or
// yes/no strings exactly as the form collects them.
type Questionnaire struct {
	ID        int64  `db:"id" json:"id"`
	PatientID int64  `db:"patient_id" json:"patient_id"`
	CreatedAt string `db:"created_at" json:"created_at"`

	// Presenting complaints
	Fever       *string `db:"fever" json:"fever,omitempty"`
	Cough       *string `db:"cough" json:"cough,omitempty"`
	NightSweats *string `db:"night_sweats" json:"night_sweats,omitempty"`
	WeightLoss  *string `db:"weight_loss" json:"weight_loss,omitempty"`

	// Exposure and environment
	FamilyTB       *string `db:"family_tb" json:"family_tb,omitempty"`
	RespInfections *string `db:"resp_infections" json:"resp_infections,omitempty"`
	MouthBreathing *string `db:"mouth_breathing" json:"mouth_breathing,omitempty"`
	InhalerUse     *string `db:"inhaler_use" json:"inhaler_use,omitempty"`
	HomeNebulizer  *string `db:"home_nebulizer" json:"home_nebulizer,omitempty"`
	Residence      *string `db:"residence" json:"residence,omitempty"`
	HouseholdSize  *int64  `db:"household_size" json:"household_size,omitempty"`
	AnimalContact  *string `db:"animal_contact" json:"animal_contact,omitempty"`
	AnimalNote     *string `db:"animal_note" json:"animal_note,omitempty"`
	RawMilk        *string `db:"raw_milk" json:"raw_milk,omitempty"`

	// Recurrent findings
	OralAphthae         *string `db:"oral_aphthae" json:"oral_aphthae,omitempty"`
	GenitalUlcer        *string `db:"genital_ulcer" json:"genital_ulcer,omitempty"`
	RecurrentInfections *string `db:"recurrent_infections" json:"recurrent_infections,omitempty"`
	JointPain           *string `db:"joint_pain" json:"joint_pain,omitempty"`
	JointNote           *string `db:"joint_note" json:"joint_note,omitempty"`
	RheumaticDisease    *string `db:"rheumatic_disease" json:"rheumatic_disease,omitempty"`

	// Birth history
	GestationWeeks *string `db:"gestation_weeks" json:"gestation_weeks,omitempty"`
	DeliveryMode   *string `db:"delivery_mode" json:"delivery_mode,omitempty"`
	BirthWeight    *string `db:"birth_weight" json:"birth_weight,omitempty"`
	Incubator      *string `db:"incubator" json:"incubator,omitempty"`
	Breastfeeding  *string `db:"breastfeeding" json:"breastfeeding,omitempty"`
	Vaccinations   *string `db:"vaccinations" json:"vaccinations,omitempty"`

	// Family history
	MotherAge         *string `db:"mother_age" json:"mother_age,omitempty"`
	MotherHealth      *string `db:"mother_health" json:"mother_health,omitempty"`
	FatherAge         *string `db:"father_age" json:"father_age,omitempty"`
	FatherHealth      *string `db:"father_health" json:"father_health,omitempty"`
	Consanguinity     *string `db:"consanguinity" json:"consanguinity,omitempty"`
	ConsanguinityNote *string `db:"consanguinity_note" json:"consanguinity_note,omitempty"`
	Sibling1          *string `db:"sibling1" json:"sibling1,omitempty"`
	Sibling2          *string `db:"sibling2" json:"sibling2,omitempty"`
	Sibling3          *string `db:"sibling3" json:"sibling3,omitempty"`
	Sibling4          *string `db:"sibling4" json:"sibling4,omitempty"`
	FamilyDisease     *string `db:"family_disease" json:"family_disease,omitempty"`
	FamilyDiseaseNote *string `db:"family_disease_note" json:"family_disease_note,omitempty"`

	// Vitals
	BloodPressure *string `db:"blood_pressure" json:"blood_pressure,omitempty"`
	Pulse         *string `db:"pulse" json:"pulse,omitempty"`
	Temperature   *string `db:"temperature" json:"temperature,omitempty"`
	RespRate      *string `db:"resp_rate" json:"resp_rate,omitempty"`
	Height        *string `db:"height" json:"height,omitempty"`

	// Examination
	GeneralCondition   *string `db:"general_condition" json:"general_condition,omitempty"`
	Allergy            *string `db:"allergy" json:"allergy,omitempty"`
	AllergyNote        *string `db:"allergy_note" json:"allergy_note,omitempty"`
	Diabetes           *string `db:"diabetes" json:"diabetes,omitempty"`
	DiabetesNote       *string `db:"diabetes_note" json:"diabetes_note,omitempty"`
	Oropharynx         *string `db:"oropharynx" json:"oropharynx,omitempty"`
	PostnasalDrip      *string `db:"postnasal_drip" json:"postnasal_drip,omitempty"`
	CervicalLymph      *string `db:"cervical_lymph" json:"cervical_lymph,omitempty"`
	BreathSounds       *string `db:"breath_sounds" json:"breath_sounds,omitempty"`
	Rales              *string `db:"rales" json:"rales,omitempty"`
	RalesNote          *string `db:"rales_note" json:"rales_note,omitempty"`
	Rhonchi            *string `db:"rhonchi" json:"rhonchi,omitempty"`
	RhonchiNote        *string `db:"rhonchi_note" json:"rhonchi_note,omitempty"`
	HeartRhythm        *string `db:"heart_rhythm" json:"heart_rhythm,omitempty"`
	HeartNote          *string `db:"heart_note" json:"heart_note,omitempty"`
	Murmur             *string `db:"murmur" json:"murmur,omitempty"`
	Abdomen            *string `db:"abdomen" json:"abdomen,omitempty"`
	AbdomenNote        *string `db:"abdomen_note" json:"abdomen_note,omitempty"`
	Hepatosplenomegaly *string `db:"hepatosplenomegaly" json:"hepatosplenomegaly,omitempty"`
	NuchalRigidity     *string `db:"nuchal_rigidity" json:"nuchal_rigidity,omitempty"`
	MeningealSigns     *string `db:"meningeal_signs" json:"meningeal_signs,omitempty"`
	Rash               *string `db:"rash" json:"rash,omitempty"`

	ClinicalNotes *string `db:"clinical_notes" json:"clinical_notes,omitempty"`
}

func (q *Questionnaire) Validate() error {
	return validation.ValidateStruct(q,
		validation.Field(&q.PatientID, validation.Required),
	)
}
