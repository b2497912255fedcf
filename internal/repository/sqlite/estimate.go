package sqlite

import (
	"context"
	"fmt"

	"github.com/sitedesk/sitedesk/pkg/models"
)

func (r *SQLiteRepo) CreateEstimate(ctx context.Context, e *models.Estimate) (int64, error) {
	if e == nil {
		return 0, fmt.Errorf("estimate is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO estimates (user_id, client_name, project_name, amount, details, status, created) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.UserID, e.ClientName, e.ProjectName, e.Amount, e.Details, e.Status, now())
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) ListEstimates(ctx context.Context) ([]models.Estimate, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, user_id, client_name, project_name, amount, details, status, created FROM estimates ORDER BY created DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Estimate
	for rows.Next() {
		var e models.Estimate
		if err := rows.Scan(&e.ID, &e.UserID, &e.ClientName, &e.ProjectName, &e.Amount, &e.Details, &e.Status, &e.Created); err != nil {
			return nil, err
		}

		out = append(out, e)
	}

	return out, rows.Err()
}
