package sqlite

import (
	"io"
	"time"

	"log/slog"

	"github.com/sitedesk/sitedesk/internal/db"
	"github.com/sitedesk/sitedesk/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.UserRepo = (*SQLiteRepo)(nil)
var _ repository.InspectionRepo = (*SQLiteRepo)(nil)
var _ repository.TripReportRepo = (*SQLiteRepo)(nil)
var _ repository.EstimateRepo = (*SQLiteRepo)(nil)
var _ repository.MinuteRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}
