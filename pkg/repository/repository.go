package repository

import (
	"context"

	"github.com/sitedesk/sitedesk/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	SeedAdmin(ctx context.Context) error
}

type InspectionRepo interface {
	CreateInspection(ctx context.Context, i *models.Inspection) (int64, error)
	ListInspections(ctx context.Context) ([]models.Inspection, error)
}

type TripReportRepo interface {
	CreateTripReport(ctx context.Context, tr *models.TripReport) (int64, error)
	ListTripReports(ctx context.Context) ([]models.TripReport, error)
}

type EstimateRepo interface {
	CreateEstimate(ctx context.Context, e *models.Estimate) (int64, error)
	ListEstimates(ctx context.Context) ([]models.Estimate, error)
}

type MinuteRepo interface {
	CreateMinute(ctx context.Context, m *models.Minute) (int64, error)
	ListMinutes(ctx context.Context) ([]models.Minute, error)
}
