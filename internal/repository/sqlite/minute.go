package sqlite

import (
	"context"
	"fmt"

	"github.com/sitedesk/sitedesk/pkg/models"
)

func (r *SQLiteRepo) CreateMinute(ctx context.Context, m *models.Minute) (int64, error) {
	if m == nil {
		return 0, fmt.Errorf("minute is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO minutes (user_id, title, date, attendees, content, action_items, created) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.UserID, m.Title, m.Date, m.Attendees, m.Content, m.ActionItems, now())
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) ListMinutes(ctx context.Context) ([]models.Minute, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, user_id, title, date, attendees, content, action_items, created FROM minutes ORDER BY created DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Minute
	for rows.Next() {
		var m models.Minute
		if err := rows.Scan(&m.ID, &m.UserID, &m.Title, &m.Date, &m.Attendees, &m.Content, &m.ActionItems, &m.Created); err != nil {
			return nil, err
		}

		out = append(out, m)
	}

	return out, rows.Err()
}
