package patient

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

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

const patientCols = `id, national_id, first_name, last_name, birth_date, ward`

func (r *sqliteRepo) Create(ctx context.Context, p *Patient) (int64, error) {
	res, err := r.q(ctx).ExecContext(ctx, `
		INSERT INTO patient (national_id, first_name, last_name, birth_date, ward)
		VALUES (?, ?, ?, ?, ?)`,
		p.NationalID, p.FirstName, p.LastName, p.BirthDate, p.Ward,
	)
	if err != nil {
		return 0, fmt.Errorf("insert patient: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("patient insert id: %w", err)
	}
	p.ID = id
	return id, nil
}

func (r *sqliteRepo) GetByID(ctx context.Context, id int64) (*Patient, error) {
	row := r.q(ctx).QueryRowContext(ctx, `SELECT `+patientCols+` FROM patient WHERE id = ?`, id)
	return scanPatient(row)
}

func (r *sqliteRepo) Update(ctx context.Context, p *Patient) error {
	res, err := r.q(ctx).ExecContext(ctx, `
		UPDATE patient SET national_id = ?, first_name = ?, last_name = ?, birth_date = ?, ward = ?
		WHERE id = ?`,
		p.NationalID, p.FirstName, p.LastName, p.BirthDate, p.Ward, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update patient %d: %w", p.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update patient %d: %w", p.ID, err)
	}
	if n == 0 {
		return db.ErrNotFound
	}
	return nil
}

// Delete removes the patient row only. Deleting an id that no longer
// exists is a no-op; callers wanting the full cascade go through the
// service.
func (r *sqliteRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q(ctx).ExecContext(ctx, `DELETE FROM patient WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete patient %d: %w", id, err)
	}
	return nil
}

// Search scans the whole patient set and folds case in Go: the data is
// Turkish, and SQLite's LOWER() only folds ASCII, so an SQL LIKE would
// miss "Ayşe" for "AYŞE". The set is one ward's worth of rows.
func (r *sqliteRepo) Search(ctx context.Context, query string) ([]*Patient, error) {
	rows, err := r.q(ctx).QueryContext(ctx, `SELECT `+patientCols+` FROM patient ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("search patients: %w", err)
	}
	defer rows.Close()

	needle := strings.ToLower(strings.TrimSpace(query))
	var patients []*Patient
	for rows.Next() {
		p, err := scanPatientRows(rows)
		if err != nil {
			return nil, err
		}
		if needle == "" || matches(p, needle) {
			patients = append(patients, p)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search patients: %w", err)
	}
	return patients, nil
}

func matches(p *Patient, needle string) bool {
	return strings.Contains(strings.ToLower(p.FirstName), needle) ||
		strings.Contains(strings.ToLower(p.LastName), needle) ||
		strings.Contains(p.NationalID, needle)
}

func (r *sqliteRepo) NationalIDInUse(ctx context.Context, nationalID string, excludeID int64) (bool, error) {
	var id int64
	err := r.q(ctx).QueryRowContext(ctx,
		`SELECT id FROM patient WHERE national_id = ? AND id <> ?`,
		nationalID, excludeID,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check national id: %w", err)
	}
	return true, nil
}

func scanPatient(row *sql.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.NationalID, &p.FirstName, &p.LastName, &p.BirthDate, &p.Ward)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan patient: %w", err)
	}
	return &p, nil
}

func scanPatientRows(rows *sql.Rows) (*Patient, error) {
	var p Patient
	if err := rows.Scan(&p.ID, &p.NationalID, &p.FirstName, &p.LastName, &p.BirthDate, &p.Ward); err != nil {
		return nil, fmt.Errorf("scan patient: %w", err)
	}
	return &p, nil
}
