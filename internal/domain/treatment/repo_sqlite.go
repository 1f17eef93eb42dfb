package treatment

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

const courseCols = `id, patient_id, drug, start_date, end_date, dosage`

func (r *sqliteRepo) Create(ctx context.Context, d *DrugCourse) (int64, error) {
	res, err := r.q(ctx).ExecContext(ctx, `
		INSERT INTO drug_course (patient_id, drug, start_date, end_date, dosage)
		VALUES (?, ?, ?, ?, ?)`,
		d.PatientID, d.Drug, d.StartDate, d.EndDate, d.Dosage,
	)
	if err != nil {
		return 0, fmt.Errorf("insert drug course: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("drug course insert id: %w", err)
	}
	d.ID = id
	return id, nil
}

func (r *sqliteRepo) GetByID(ctx context.Context, id int64) (*DrugCourse, error) {
	var d DrugCourse
	err := r.q(ctx).QueryRowContext(ctx,
		`SELECT `+courseCols+` FROM drug_course WHERE id = ?`, id,
	).Scan(&d.ID, &d.PatientID, &d.Drug, &d.StartDate, &d.EndDate, &d.Dosage)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get drug course %d: %w", id, err)
	}
	return &d, nil
}

func (r *sqliteRepo) Update(ctx context.Context, d *DrugCourse) error {
	res, err := r.q(ctx).ExecContext(ctx, `
		UPDATE drug_course SET drug = ?, start_date = ?, end_date = ?, dosage = ? WHERE id = ?`,
		d.Drug, d.StartDate, d.EndDate, d.Dosage, d.ID,
	)
	if err != nil {
		return fmt.Errorf("update drug course %d: %w", d.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update drug course %d: %w", d.ID, err)
	}
	if n == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *sqliteRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q(ctx).ExecContext(ctx, `DELETE FROM drug_course WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete drug course %d: %w", id, err)
	}
	return nil
}

func (r *sqliteRepo) ListByPatient(ctx context.Context, patientID int64) ([]*DrugCourse, error) {
	rows, err := r.q(ctx).QueryContext(ctx,
		`SELECT `+courseCols+` FROM drug_course WHERE patient_id = ? ORDER BY id`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list drug courses: %w", err)
	}
	defer rows.Close()

	var courses []*DrugCourse
	for rows.Next() {
		var d DrugCourse
		if err := rows.Scan(&d.ID, &d.PatientID, &d.Drug, &d.StartDate, &d.EndDate, &d.Dosage); err != nil {
			return nil, fmt.Errorf("scan drug course: %w", err)
		}
		courses = append(courses, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drug courses: %w", err)
	}
	return courses, nil
}

func (r *sqliteRepo) DeleteByPatient(ctx context.Context, patientID int64) error {
	if _, err := r.q(ctx).ExecContext(ctx,
		`DELETE FROM drug_course WHERE patient_id = ?`, patientID); err != nil {
		return fmt.Errorf("delete drug courses of patient %d: %w", patientID, err)
	}
	return nil
}
