package culture

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

const cultureCols = `id, patient_id, specimen_source, organism, grown_at`

func (r *sqliteRepo) Create(ctx context.Context, c *Culture) (int64, error) {
	res, err := r.q(ctx).ExecContext(ctx, `
		INSERT INTO culture (patient_id, specimen_source, organism, grown_at)
		VALUES (?, ?, ?, ?)`,
		c.PatientID, c.SpecimenSource, c.Organism, c.GrownAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert culture: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("culture insert id: %w", err)
	}
	c.ID = id
	return id, nil
}

func (r *sqliteRepo) GetByID(ctx context.Context, id int64) (*Culture, error) {
	var c Culture
	err := r.q(ctx).QueryRowContext(ctx,
		`SELECT `+cultureCols+` FROM culture WHERE id = ?`, id,
	).Scan(&c.ID, &c.PatientID, &c.SpecimenSource, &c.Organism, &c.GrownAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get culture %d: %w", id, err)
	}
	return &c, nil
}

func (r *sqliteRepo) Update(ctx context.Context, c *Culture) error {
	res, err := r.q(ctx).ExecContext(ctx, `
		UPDATE culture SET specimen_source = ?, organism = ?, grown_at = ? WHERE id = ?`,
		c.SpecimenSource, c.Organism, c.GrownAt, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update culture %d: %w", c.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update culture %d: %w", c.ID, err)
	}
	if n == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *sqliteRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q(ctx).ExecContext(ctx, `DELETE FROM culture WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete culture %d: %w", id, err)
	}
	return nil
}

func (r *sqliteRepo) ListByPatient(ctx context.Context, patientID int64) ([]*Culture, error) {
	rows, err := r.q(ctx).QueryContext(ctx,
		`SELECT `+cultureCols+` FROM culture WHERE patient_id = ? ORDER BY id`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list cultures: %w", err)
	}
	defer rows.Close()

	var cultures []*Culture
	for rows.Next() {
		var c Culture
		if err := rows.Scan(&c.ID, &c.PatientID, &c.SpecimenSource, &c.Organism, &c.GrownAt); err != nil {
			return nil, fmt.Errorf("scan culture: %w", err)
		}
		cultures = append(cultures, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list cultures: %w", err)
	}
	return cultures, nil
}

func (r *sqliteRepo) DeleteByPatient(ctx context.Context, patientID int64) error {
	if _, err := r.q(ctx).ExecContext(ctx, `
		DELETE FROM susceptibility
		WHERE culture_id IN (SELECT id FROM culture WHERE patient_id = ?)`, patientID); err != nil {
		return fmt.Errorf("delete susceptibilities of patient %d: %w", patientID, err)
	}
	if _, err := r.q(ctx).ExecContext(ctx,
		`DELETE FROM culture WHERE patient_id = ?`, patientID); err != nil {
		return fmt.Errorf("delete cultures of patient %d: %w", patientID, err)
	}
	return nil
}

// -- Susceptibility results --

func (r *sqliteRepo) AddResult(ctx context.Context, s *Susceptibility) (int64, error) {
	res, err := r.q(ctx).ExecContext(ctx, `
		INSERT INTO susceptibility (culture_id, antibiotic, outcome) VALUES (?, ?, ?)`,
		s.CultureID, s.Antibiotic, s.Outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("insert susceptibility: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("susceptibility insert id: %w", err)
	}
	s.ID = id
	return id, nil
}

func (r *sqliteRepo) GetResult(ctx context.Context, id int64) (*Susceptibility, error) {
	var s Susceptibility
	err := r.q(ctx).QueryRowContext(ctx,
		`SELECT id, culture_id, antibiotic, outcome FROM susceptibility WHERE id = ?`, id,
	).Scan(&s.ID, &s.CultureID, &s.Antibiotic, &s.Outcome)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get susceptibility %d: %w", id, err)
	}
	return &s, nil
}

func (r *sqliteRepo) UpdateResult(ctx context.Context, s *Susceptibility) error {
	res, err := r.q(ctx).ExecContext(ctx,
		`UPDATE susceptibility SET antibiotic = ?, outcome = ? WHERE id = ?`,
		s.Antibiotic, s.Outcome, s.ID,
	)
	if err != nil {
		return fmt.Errorf("update susceptibility %d: %w", s.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update susceptibility %d: %w", s.ID, err)
	}
	if n == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *sqliteRepo) DeleteResult(ctx context.Context, id int64) error {
	if _, err := r.q(ctx).ExecContext(ctx, `DELETE FROM susceptibility WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete susceptibility %d: %w", id, err)
	}
	return nil
}

func (r *sqliteRepo) ListResults(ctx context.Context, cultureID int64) ([]*Susceptibility, error) {
	rows, err := r.q(ctx).QueryContext(ctx,
		`SELECT id, culture_id, antibiotic, outcome FROM susceptibility WHERE culture_id = ? ORDER BY id`,
		cultureID)
	if err != nil {
		return nil, fmt.Errorf("list susceptibilities: %w", err)
	}
	defer rows.Close()

	var results []*Susceptibility
	for rows.Next() {
		var s Susceptibility
		if err := rows.Scan(&s.ID, &s.CultureID, &s.Antibiotic, &s.Outcome); err != nil {
			return nil, fmt.Errorf("scan susceptibility: %w", err)
		}
		results = append(results, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list susceptibilities: %w", err)
	}
	return results, nil
}

func (r *sqliteRepo) DeleteResultsByCulture(ctx context.Context, cultureID int64) error {
	if _, err := r.q(ctx).ExecContext(ctx,
		`DELETE FROM susceptibility WHERE culture_id = ?`, cultureID); err != nil {
		return fmt.Errorf("delete susceptibilities of culture %d: %w", cultureID, err)
	}
	return nil
}
