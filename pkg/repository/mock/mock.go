package mock

import (
	"context"

	"github.com/sitedesk/sitedesk/pkg/models"
)

// Test helpers and mocks
type Mocks struct {
	UserRepo       *UserRepo
	InspectionRepo *InspectionRepo
	TripReportRepo *TripReportRepo
	EstimateRepo   *EstimateRepo
	MinuteRepo     *MinuteRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		UserRepo:       &UserRepo{},
		InspectionRepo: &InspectionRepo{},
		TripReportRepo: &TripReportRepo{},
		EstimateRepo:   &EstimateRepo{},
		MinuteRepo:     &MinuteRepo{},
	}
}

type UserRepo struct {
	Stored    *models.User
	CreateErr error
}

func (m *UserRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.Stored = &models.User{ID: 1, Username: u.Username, Role: u.Role, PasswordHash: u.PasswordHash}
	return 1, nil
}

func (m *UserRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if m.Stored != nil && m.Stored.ID == id {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *UserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.Stored != nil && m.Stored.Username == username {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *UserRepo) SeedAdmin(ctx context.Context) error { return nil }

type InspectionRepo struct {
	Rows      []models.Inspection
	CreateErr error
	ListErr   error
}

func (m *InspectionRepo) CreateInspection(ctx context.Context, i *models.Inspection) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	stored := *i
	stored.ID = int64(len(m.Rows) + 1)
	// prepend so the slice mirrors the store's newest-first ordering
	m.Rows = append([]models.Inspection{stored}, m.Rows...)
	return stored.ID, nil
}

func (m *InspectionRepo) ListInspections(ctx context.Context) ([]models.Inspection, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Rows, nil
}

type TripReportRepo struct {
	Rows      []models.TripReport
	CreateErr error
	ListErr   error
}

func (m *TripReportRepo) CreateTripReport(ctx context.Context, tr *models.TripReport) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	stored := *tr
	stored.ID = int64(len(m.Rows) + 1)
	m.Rows = append([]models.TripReport{stored}, m.Rows...)
	return stored.ID, nil
}

func (m *TripReportRepo) ListTripReports(ctx context.Context) ([]models.TripReport, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Rows, nil
}

type EstimateRepo struct {
	Rows      []models.Estimate
	CreateErr error
	ListErr   error
}

func (m *EstimateRepo) CreateEstimate(ctx context.Context, e *models.Estimate) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	stored := *e
	stored.ID = int64(len(m.Rows) + 1)
	m.Rows = append([]models.Estimate{stored}, m.Rows...)
	return stored.ID, nil
}

func (m *EstimateRepo) ListEstimates(ctx context.Context) ([]models.Estimate, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Rows, nil
}

type MinuteRepo struct {
	Rows      []models.Minute
	CreateErr error
	ListErr   error
}

func (m *MinuteRepo) CreateMinute(ctx context.Context, mi *models.Minute) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	stored := *mi
	stored.ID = int64(len(m.Rows) + 1)
	m.Rows = append([]models.Minute{stored}, m.Rows...)
	return stored.ID, nil
}

func (m *MinuteRepo) ListMinutes(ctx context.Context) ([]models.Minute, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Rows, nil
}
