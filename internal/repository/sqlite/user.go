package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"log/slog"

	"github.com/sitedesk/sitedesk/pkg/models"
	"golang.org/x/crypto/bcrypt"
)

// Seeded administrator credentials. The password must be rotated in any
// real deployment.
const (
	adminUsername        = "admin"
	adminDefaultPassword = "admin123"
	adminRole            = "admin"
)

func (r *SQLiteRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if u == nil {
		return 0, fmt.Errorf("user is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?)`, u.Username, u.PasswordHash, u.Role)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, username, password_hash, role FROM users WHERE id = ?`, id)
	var u models.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &u, nil
}

func (r *SQLiteRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, username, password_hash, role FROM users WHERE username = ?`, username)
	var u models.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &u, nil
}

// SeedAdmin inserts the default admin account if no user with that username
// exists yet. Running it on every boot is a no-op after the first.
func (r *SQLiteRepo) SeedAdmin(ctx context.Context) error {
	existing, err := r.GetUserByUsername(ctx, adminUsername)
	if err != nil {
		return fmt.Errorf("check admin user: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminDefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	u := &models.User{Username: adminUsername, PasswordHash: string(hash), Role: adminRole}
	if _, err := r.CreateUser(ctx, u); err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	r.logger.Info("seeded default admin user", slog.String("username", adminUsername))
	return nil
}
