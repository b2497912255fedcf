package main

import (
	"context"
	"fmt"
	"os"

	dbfs "github.com/sitedesk/sitedesk/db"
	"github.com/sitedesk/sitedesk/internal/config"
	"github.com/sitedesk/sitedesk/internal/db"
	"github.com/sitedesk/sitedesk/internal/repository/sqlite"
)

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		fmt.Fprintf(os.Stderr, "Migration runner error: %v\n", err)
		os.Exit(1)
	}

	repo := sqlite.New(database, nil)
	if err := repo.SeedAdmin(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Seed error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Database %s initialized.\n", cfg.DatabasePath)
}
