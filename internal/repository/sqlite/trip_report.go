package sqlite

import (
	"context"
	"fmt"

	"github.com/sitedesk/sitedesk/pkg/models"
)

func (r *SQLiteRepo) CreateTripReport(ctx context.Context, tr *models.TripReport) (int64, error) {
	if tr == nil {
		return 0, fmt.Errorf("trip report is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO trip_reports (user_id, destination, date_start, date_end, purpose, results, expenses, created) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		tr.UserID, tr.Destination, tr.DateStart, tr.DateEnd, tr.Purpose, tr.Results, tr.Expenses, now())
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) ListTripReports(ctx context.Context) ([]models.TripReport, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, user_id, destination, date_start, date_end, purpose, results, expenses, created FROM trip_reports ORDER BY created DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.TripReport
	for rows.Next() {
		var tr models.TripReport
		if err := rows.Scan(&tr.ID, &tr.UserID, &tr.Destination, &tr.DateStart, &tr.DateEnd, &tr.Purpose, &tr.Results, &tr.Expenses, &tr.Created); err != nil {
			return nil, err
		}

		out = append(out, tr)
	}

	return out, rows.Err()
}
