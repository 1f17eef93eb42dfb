package lab

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

const panelCols = `id, patient_id, created_at, ppd,
	crp, wbc, lymphocytes, neutrophils, pct,
	glucose, sodium, chloride, phosphorus, magnesium,
	ast, alt, ggt, alp,
	total_bilirubin, direct_bilirubin, albumin,
	creatinine, bun, egfr`

func (r *sqliteRepo) Create(ctx context.Context, p *Panel) (int64, error) {
	res, err := r.q(ctx).ExecContext(ctx, `
		INSERT INTO lab_panel (
			patient_id, created_at, ppd,
			crp, wbc, lymphocytes, neutrophils, pct,
			glucose, sodium, chloride, phosphorus, magnesium,
			ast, alt, ggt, alp,
			total_bilirubin, direct_bilirubin, albumin,
			creatinine, bun, egfr
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		p.PatientID, p.CreatedAt, p.PPD,
		p.CRP, p.WBC, p.Lymphocytes, p.Neutrophils, p.PCT,
		p.Glucose, p.Sodium, p.Chloride, p.Phosphorus, p.Magnesium,
		p.AST, p.ALT, p.GGT, p.ALP,
		p.TotalBilirubin, p.DirectBilirubin, p.Albumin,
		p.Creatinine, p.BUN, p.EGFR,
	)
	if err != nil {
		return 0, fmt.Errorf("insert lab panel: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("lab panel insert id: %w", err)
	}
	p.ID = id
	return id, nil
}

func (r *sqliteRepo) GetByID(ctx context.Context, id int64) (*Panel, error) {
	p, err := scanPanel(r.q(ctx).QueryRowContext(ctx,
		`SELECT `+panelCols+` FROM lab_panel WHERE id = ?`, id))
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *sqliteRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q(ctx).ExecContext(ctx, `DELETE FROM lab_panel WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete lab panel %d: %w", id, err)
	}
	return nil
}

func (r *sqliteRepo) ListByPatient(ctx context.Context, patientID int64) ([]*Panel, error) {
	rows, err := r.q(ctx).QueryContext(ctx,
		`SELECT `+panelCols+` FROM lab_panel WHERE patient_id = ? ORDER BY id`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list lab panels: %w", err)
	}
	defer rows.Close()

	var panels []*Panel
	for rows.Next() {
		p, err := scanPanelRows(rows)
		if err != nil {
			return nil, err
		}
		panels = append(panels, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list lab panels: %w", err)
	}
	return panels, nil
}

// LatestByPatient returns the most recently inserted panel, insertion
// order being the id order.
func (r *sqliteRepo) LatestByPatient(ctx context.Context, patientID int64) (*Panel, error) {
	return scanPanel(r.q(ctx).QueryRowContext(ctx,
		`SELECT `+panelCols+` FROM lab_panel WHERE patient_id = ? ORDER BY id DESC LIMIT 1`,
		patientID))
}

func (r *sqliteRepo) DeleteByPatient(ctx context.Context, patientID int64) error {
	if _, err := r.q(ctx).ExecContext(ctx,
		`DELETE FROM lab_panel WHERE patient_id = ?`, patientID); err != nil {
		return fmt.Errorf("delete lab panels of patient %d: %w", patientID, err)
	}
	return nil
}

func scanPanel(row *sql.Row) (*Panel, error) {
	var p Panel
	err := row.Scan(
		&p.ID, &p.PatientID, &p.CreatedAt, &p.PPD,
		&p.CRP, &p.WBC, &p.Lymphocytes, &p.Neutrophils, &p.PCT,
		&p.Glucose, &p.Sodium, &p.Chloride, &p.Phosphorus, &p.Magnesium,
		&p.AST, &p.ALT, &p.GGT, &p.ALP,
		&p.TotalBilirubin, &p.DirectBilirubin, &p.Albumin,
		&p.Creatinine, &p.BUN, &p.EGFR,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan lab panel: %w", err)
	}
	return &p, nil
}

func scanPanelRows(rows *sql.Rows) (*Panel, error) {
	var p Panel
	if err := rows.Scan(
		&p.ID, &p.PatientID, &p.CreatedAt, &p.PPD,
		&p.CRP, &p.WBC, &p.Lymphocytes, &p.Neutrophils, &p.PCT,
		&p.Glucose, &p.Sodium, &p.Chloride, &p.Phosphorus, &p.Magnesium,
		&p.AST, &p.ALT, &p.GGT, &p.ALP,
		&p.TotalBilirubin, &p.DirectBilirubin, &p.Albumin,
		&p.Creatinine, &p.BUN, &p.EGFR,
	); err != nil {
		return nil, fmt.Errorf("scan lab panel: %w", err)
	}
	return &p, nil
}
