package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sitedesk/sitedesk/internal/config"
	"github.com/sitedesk/sitedesk/internal/db"
)

// recordTables are the business tables reported in the backup summary.
var recordTables = []string{"users", "inspections", "trip_reports", "estimates", "minutes"}

func main() {
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	src := cfg.DatabasePath
	dst := fmt.Sprintf("%s.bak-%s", src, time.Now().UTC().Format("20060102-150405"))

	srcFile, err := os.Open(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Backup error: %v\n", err)
		os.Exit(1)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Backup error: %v\n", err)
		os.Exit(1)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		fmt.Fprintf(os.Stderr, "Backup error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Database backed up to %s\n", dst)

	// summary of what the backup holds, so an operator can sanity-check it
	ctx := context.Background()
	database, err := db.New(ctx, dst)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Summary error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	for _, table := range recordTables {
		var count int64
		row := database.QueryRow(ctx, `SELECT COUNT(*) FROM `+table)
		if err := row.Scan(&count); err != nil {
			fmt.Fprintf(os.Stderr, "Summary error for %s: %v\n", table, err)
			os.Exit(1)
		}
		fmt.Printf("  %s: %d rows\n", table, count)
	}
}
