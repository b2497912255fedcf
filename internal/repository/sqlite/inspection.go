package sqlite

import (
	"context"
	"fmt"

	"github.com/sitedesk/sitedesk/pkg/models"
)

func (r *SQLiteRepo) CreateInspection(ctx context.Context, i *models.Inspection) (int64, error) {
	if i == nil {
		return 0, fmt.Errorf("inspection is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO inspections (user_id, project_name, date, location, findings, status, created) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		i.UserID, i.ProjectName, i.Date, i.Location, i.Findings, i.Status, now())
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) ListInspections(ctx context.Context) ([]models.Inspection, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, user_id, project_name, date, location, findings, status, created FROM inspections ORDER BY created DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Inspection
	for rows.Next() {
		var i models.Inspection
		if err := rows.Scan(&i.ID, &i.UserID, &i.ProjectName, &i.Date, &i.Location, &i.Findings, &i.Status, &i.Created); err != nil {
			return nil, err
		}

		out = append(out, i)
	}

	return out, rows.Err()
}
