package db

import (
	"context"
	"database/sql"
	"fmt"
)

// The tables have grown columns over the life of the dataset. Old database
// files opened by a newer build must gain the new columns on first use, so
// tables are created with their original minimal shape and every column
// added since is appended by an additive ALTER. Columns are never dropped,
// renamed, or retyped.

var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS patient(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		national_id TEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		birth_date TEXT,
		ward TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS culture(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		patient_id INTEGER NOT NULL,
		organism TEXT,
		grown_at TEXT,
		FOREIGN KEY(patient_id) REFERENCES patient(id)
	)`,
	`CREATE TABLE IF NOT EXISTS susceptibility(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		culture_id INTEGER NOT NULL,
		antibiotic TEXT,
		outcome TEXT,
		FOREIGN KEY(culture_id) REFERENCES culture(id)
	)`,
	`CREATE TABLE IF NOT EXISTS drug_course(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		patient_id INTEGER NOT NULL,
		drug TEXT,
		start_date TEXT,
		end_date TEXT,
		dosage TEXT,
		FOREIGN KEY(patient_id) REFERENCES patient(id)
	)`,
	`CREATE TABLE IF NOT EXISTS lab_panel(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		patient_id INTEGER NOT NULL,
		created_at TEXT,
		ppd TEXT,
		crp REAL, wbc REAL, lymphocytes REAL, neutrophils REAL, pct REAL,
		glucose REAL, sodium REAL, chloride REAL, phosphorus REAL, magnesium REAL,
		ast REAL, alt REAL, ggt REAL, alp REAL,
		total_bilirubin REAL, direct_bilirubin REAL, albumin REAL,
		creatinine REAL, bun REAL, egfr REAL,
		FOREIGN KEY(patient_id) REFERENCES patient(id)
	)`,
	`CREATE TABLE IF NOT EXISTS questionnaire(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		patient_id INTEGER NOT NULL,
		created_at TEXT,
		FOREIGN KEY(patient_id) REFERENCES patient(id)
	)`,
}

// Column describes one column of an evolved table.
type Column struct {
	Name string
	Type string
}

// cultureColumns lists the columns added to the culture table after its
// first shipped shape.
var cultureColumns = []Column{
	{"specimen_source", "TEXT"},
}

// questionnaireColumns lists every intake field added to the questionnaire
// table since it first shipped with only id/patient_id/created_at.
var questionnaireColumns = []Column{
	{"fever", "TEXT"}, {"cough", "TEXT"}, {"night_sweats", "TEXT"}, {"weight_loss", "TEXT"},
	{"family_tb", "TEXT"}, {"resp_infections", "TEXT"}, {"mouth_breathing", "TEXT"},
	{"inhaler_use", "TEXT"}, {"home_nebulizer", "TEXT"}, {"residence", "TEXT"},
	{"household_size", "INTEGER"},
	{"animal_contact", "TEXT"}, {"animal_note", "TEXT"}, {"raw_milk", "TEXT"},
	{"oral_aphthae", "TEXT"}, {"genital_ulcer", "TEXT"}, {"recurrent_infections", "TEXT"},
	{"joint_pain", "TEXT"}, {"joint_note", "TEXT"}, {"rheumatic_disease", "TEXT"},
	{"gestation_weeks", "TEXT"}, {"delivery_mode", "TEXT"}, {"birth_weight", "TEXT"},
	{"incubator", "TEXT"}, {"breastfeeding", "TEXT"}, {"vaccinations", "TEXT"},
	{"mother_age", "TEXT"}, {"mother_health", "TEXT"}, {"father_age", "TEXT"},
	{"father_health", "TEXT"}, {"consanguinity", "TEXT"}, {"consanguinity_note", "TEXT"},
	{"sibling1", "TEXT"}, {"sibling2", "TEXT"}, {"sibling3", "TEXT"}, {"sibling4", "TEXT"},
	{"family_disease", "TEXT"}, {"family_disease_note", "TEXT"},
	{"blood_pressure", "TEXT"}, {"pulse", "TEXT"}, {"temperature", "TEXT"},
	{"resp_rate", "TEXT"}, {"height", "TEXT"},
	{"general_condition", "TEXT"}, {"allergy", "TEXT"}, {"allergy_note", "TEXT"},
	{"diabetes", "TEXT"}, {"diabetes_note", "TEXT"}, {"oropharynx", "TEXT"},
	{"postnasal_drip", "TEXT"}, {"cervical_lymph", "TEXT"}, {"breath_sounds", "TEXT"},
	{"rales", "TEXT"}, {"rales_note", "TEXT"}, {"rhonchi", "TEXT"}, {"rhonchi_note", "TEXT"},
	{"heart_rhythm", "TEXT"}, {"heart_note", "TEXT"}, {"murmur", "TEXT"},
	{"abdomen", "TEXT"}, {"abdomen_note", "TEXT"}, {"hepatosplenomegaly", "TEXT"},
	{"nuchal_rigidity", "TEXT"}, {"meningeal_signs", "TEXT"}, {"rash", "TEXT"},
	{"clinical_notes", "TEXT"},
}

// evolvedTables pairs each evolved table with its full expected column set,
// in a fixed order so migration failures are reproducible.
var evolvedTables = []struct {
	table   string
	columns []Column
}{
	{"culture", cultureColumns},
	{"questionnaire", questionnaireColumns},
}

// EnsureSchema creates any missing table and appends any missing column to
// the evolved tables. It is idempotent: against an already-current file it
// performs zero alterations. Any failure aborts immediately so a partially
// migrated table is never treated as current.
func EnsureSchema(ctx context.Context, conn *sql.DB) error {
	for _, stmt := range createStatements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	for _, ev := range evolvedTables {
		if err := ensureColumns(ctx, conn, ev.table, ev.columns); err != nil {
			return err
		}
	}
	return nil
}

// ensureColumns inspects the live column list of table and adds every
// expected column that is not yet present.
func ensureColumns(ctx context.Context, conn Querier, table string, columns []Column) error {
	existing, err := tableColumns(ctx, conn, table)
	if err != nil {
		return err
	}

	for _, col := range columns {
		if existing[col.Name] {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, col.Name, col.Type)
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("add column %s.%s: %w", table, col.Name, err)
		}
	}
	return nil
}

// tableColumns returns the set of column names the live table has.
func tableColumns(ctx context.Context, conn Querier, table string) (map[string]bool, error) {
	rows, err := conn.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, fmt.Errorf("inspect table %s: %w", table, err)
	}
	defer rows.Close()

	existing := make(map[string]bool)
	for rows.Next() {
		var (
			cid, notNull, pk int
			name, typ        string
			dflt             sql.NullString
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scan table info for %s: %w", table, err)
		}
		existing[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate table info for %s: %w", table, err)
	}
	return existing, nil
}
