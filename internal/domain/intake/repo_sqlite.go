package intake

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SelinElifGur/enfeksiyon/internal/platform/db"
)

type sqliteRepo struct {
	conn *sql.DB
}

func NewRepo(conn *sql.DB) Repository {
	return &sqliteRepo{conn: conn}
}

func (r *sqliteRepo) q(ctx context.Context) db.Querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.conn
}

const questionnaireCols = `id, patient_id, created_at,
	fever, cough, night_sweats, weight_loss,
	family_tb, resp_infections, mouth_breathing, inhaler_use, home_nebulizer,
	residence, household_size, animal_contact, animal_note, raw_milk,
	oral_aphthae, genital_ulcer, recurrent_infections, joint_pain, joint_note, rheumatic_disease,
	gestation_weeks, delivery_mode, birth_weight, incubator, breastfeeding, vaccinations,
	mother_age, mother_health, father_age, father_health,
	consanguinity, consanguinity_note, sibling1, sibling2, sibling3, sibling4,
	family_disease, family_disease_note,
	blood_pressure, pulse, temperature, resp_rate, height,
	general_condition, allergy, allergy_note, diabetes, diabetes_note,
	oropharynx, postnasal_drip, cervical_lymph, breath_sounds,
	rales, rales_note, rhonchi, rhonchi_note,
	heart_rhythm, heart_note, murmur, abdomen, abdomen_note,
	hepatosplenomegaly, nuchal_rigidity, meningeal_signs, rash, clinical_notes`

func (r *sqliteRepo) Create(ctx context.Context, q *Questionnaire) (int64, error) {
	res, err := r.q(ctx).ExecContext(ctx, `
		INSERT INTO questionnaire (
			patient_id, created_at,
			fever, cough, night_sweats, weight_loss,
			family_tb, resp_infections, mouth_breathing, inhaler_use, home_nebulizer,
			residence, household_size, animal_contact, animal_note, raw_milk,
			oral_aphthae, genital_ulcer, recurrent_infections, joint_pain, joint_note, rheumatic_disease,
			gestation_weeks, delivery_mode, birth_weight, incubator, breastfeeding, vaccinations,
			mother_age, mother_health, father_age, father_health,
			consanguinity, consanguinity_note, sibling1, sibling2, sibling3, sibling4,
			family_disease, family_disease_note,
			blood_pressure, pulse, temperature, resp_rate, height,
			general_condition, allergy, allergy_note, diabetes, diabetes_note,
			oropharynx, postnasal_drip, cervical_lymph, breath_sounds,
			rales, rales_note, rhonchi, rhonchi_note,
			heart_rhythm, heart_note, murmur, abdomen, abdomen_note,
			hepatosplenomegaly, nuchal_rigidity, meningeal_signs, rash, clinical_notes
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,
			?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		q.PatientID, q.CreatedAt,
		q.Fever, q.Cough, q.NightSweats, q.WeightLoss,
		q.FamilyTB, q.RespInfections, q.MouthBreathing, q.InhalerUse, q.HomeNebulizer,
		q.Residence, q.HouseholdSize, q.AnimalContact, q.AnimalNote, q.RawMilk,
		q.OralAphthae, q.GenitalUlcer, q.RecurrentInfections, q.JointPain, q.JointNote, q.RheumaticDisease,
		q.GestationWeeks, q.DeliveryMode, q.BirthWeight, q.Incubator, q.Breastfeeding, q.Vaccinations,
		q.MotherAge, q.MotherHealth, q.FatherAge, q.FatherHealth,
		q.Consanguinity, q.ConsanguinityNote, q.Sibling1, q.Sibling2, q.Sibling3, q.Sibling4,
		q.FamilyDisease, q.FamilyDiseaseNote,
		q.BloodPressure, q.Pulse, q.Temperature, q.RespRate, q.Height,
		q.GeneralCondition, q.Allergy, q.AllergyNote, q.Diabetes, q.DiabetesNote,
		q.Oropharynx, q.PostnasalDrip, q.CervicalLymph, q.BreathSounds,
		q.Rales, q.RalesNote, q.Rhonchi, q.RhonchiNote,
		q.HeartRhythm, q.HeartNote, q.Murmur, q.Abdomen, q.AbdomenNote,
		q.Hepatosplenomegaly, q.NuchalRigidity, q.MeningealSigns, q.Rash, q.ClinicalNotes,
	)
	if err != nil {
		return 0, fmt.Errorf("insert questionnaire: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("questionnaire insert id: %w", err)
	}
	q.ID = id
	return id, nil
}

func (r *sqliteRepo) GetByID(ctx context.Context, id int64) (*Questionnaire, error) {
	return scanQuestionnaire(r.q(ctx).QueryRowContext(ctx,
		`SELECT `+questionnaireCols+` FROM questionnaire WHERE id = ?`, id))
}

func (r *sqliteRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q(ctx).ExecContext(ctx, `DELETE FROM questionnaire WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete questionnaire %d: %w", id, err)
	}
	return nil
}

func (r *sqliteRepo) ListByPatient(ctx context.Context, patientID int64) ([]*Questionnaire, error) {
	rows, err := r.q(ctx).QueryContext(ctx,
		`SELECT `+questionnaireCols+` FROM questionnaire WHERE patient_id = ? ORDER BY id`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list questionnaires: %w", err)
	}
	defer rows.Close()

	var questionnaires []*Questionnaire
	for rows.Next() {
		q, err := scanQuestionnaire(rows)
		if err != nil {
			return nil, err
		}
		questionnaires = append(questionnaires, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list questionnaires: %w", err)
	}
	return questionnaires, nil
}

// LatestByPatient returns the most recently saved questionnaire,
// insertion order being the id order.
func (r *sqliteRepo) LatestByPatient(ctx context.Context, patientID int64) (*Questionnaire, error) {
	return scanQuestionnaire(r.q(ctx).QueryRowContext(ctx,
		`SELECT `+questionnaireCols+` FROM questionnaire WHERE patient_id = ? ORDER BY id DESC LIMIT 1`,
		patientID))
}

func (r *sqliteRepo) DeleteByPatient(ctx context.Context, patientID int64) error {
	if _, err := r.q(ctx).ExecContext(ctx,
		`DELETE FROM questionnaire WHERE patient_id = ?`, patientID); err != nil {
		return fmt.Errorf("delete questionnaires of patient %d: %w", patientID, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuestionnaire(s scanner) (*Questionnaire, error) {
	var q Questionnaire
	err := s.Scan(
		&q.ID, &q.PatientID, &q.CreatedAt,
		&q.Fever, &q.Cough, &q.NightSweats, &q.WeightLoss,
		&q.FamilyTB, &q.RespInfections, &q.MouthBreathing, &q.InhalerUse, &q.HomeNebulizer,
		&q.Residence, &q.HouseholdSize, &q.AnimalContact, &q.AnimalNote, &q.RawMilk,
		&q.OralAphthae, &q.GenitalUlcer, &q.RecurrentInfections, &q.JointPain, &q.JointNote, &q.RheumaticDisease,
		&q.GestationWeeks, &q.DeliveryMode, &q.BirthWeight, &q.Incubator, &q.Breastfeeding, &q.Vaccinations,
		&q.MotherAge, &q.MotherHealth, &q.FatherAge, &q.FatherHealth,
		&q.Consanguinity, &q.ConsanguinityNote, &q.Sibling1, &q.Sibling2, &q.Sibling3, &q.Sibling4,
		&q.FamilyDisease, &q.FamilyDiseaseNote,
		&q.BloodPressure, &q.Pulse, &q.Temperature, &q.RespRate, &q.Height,
		&q.GeneralCondition, &q.Allergy, &q.AllergyNote, &q.Diabetes, &q.DiabetesNote,
		&q.Oropharynx, &q.PostnasalDrip, &q.CervicalLymph, &q.BreathSounds,
		&q.Rales, &q.RalesNote, &q.Rhonchi, &q.RhonchiNote,
		&q.HeartRhythm, &q.HeartNote, &q.Murmur, &q.Abdomen, &q.AbdomenNote,
		&q.Hepatosplenomegaly, &q.NuchalRigidity, &q.MeningealSigns, &q.Rash, &q.ClinicalNotes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan questionnaire: %w", err)
	}
	return &q, nil
}
