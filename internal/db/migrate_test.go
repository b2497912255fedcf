package db_test

import (
	"context"
	"path/filepath"
	"testing"

	dbfs "github.com/sitedesk/sitedesk/db"
	dbpkg "github.com/sitedesk/sitedesk/internal/db"
)

func openTestDB(t *testing.T) *dbpkg.DB {
	t.Helper()
	d, err := dbpkg.New(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func TestMigrate_CreatesTables(t *testing.T) {
	ctx := context.Background()
	d := openTestDB(t)

	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("Migrate returned error: %v", err)
	}

	for _, table := range []string{"users", "inspections", "trip_reports", "estimates", "minutes"} {
		var name string
		row := d.QueryRow(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name = ?`, table)
		if err := row.Scan(&name); err != nil {
			t.Fatalf("table %s missing after migrate: %v", table, err)
		}
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	d := openTestDB(t)

	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("first Migrate returned error: %v", err)
	}

	// a row must survive a second boot's migration pass
	if _, err := d.Exec(ctx, `INSERT INTO users (username, password_hash, role) VALUES ('keep', 'x', 'staff')`); err != nil {
		t.Fatalf("insert sentinel row: %v", err)
	}

	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("second Migrate returned error: %v", err)
	}

	var count int
	row := d.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE username = 'keep'`)
	if err := row.Scan(&count); err != nil {
		t.Fatalf("count sentinel rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected sentinel row to survive re-migration, got %d", count)
	}

	// each migration is recorded exactly once
	row = d.QueryRow(ctx, `SELECT COUNT(*) FROM schema_migrations`)
	var applied int
	if err := row.Scan(&applied); err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if applied != 1 {
		t.Fatalf("expected 1 recorded migration, got %d", applied)
	}
}
