package api

import (
	"github.com/gorilla/mux"
	"github.com/sitedesk/sitedesk/internal/config"
	"github.com/sitedesk/sitedesk/internal/db"
	"github.com/sitedesk/sitedesk/internal/repository/sqlite"
	"github.com/sitedesk/sitedesk/internal/session"
	"github.com/sitedesk/sitedesk/web"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, database *db.DB, sessions *session.Store) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(database, logger)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, sessions, cfg.IsProduction())
	recordsHandler := NewRecordsHandler(repo, repo, repo, repo)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/api/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/logout", authHandler.Logout).Methods("POST")

	// Protected routes: everything else under /api requires a session
	apiRoutes := r.PathPrefix("/api").Subrouter()
	apiRoutes.Use(RequireSession(sessions))

	apiRoutes.HandleFunc("/me", authHandler.Me).Methods("GET")

	apiRoutes.HandleFunc("/inspections", recordsHandler.ListInspections).Methods("GET")
	apiRoutes.HandleFunc("/inspections", recordsHandler.CreateInspection).Methods("POST")
	apiRoutes.HandleFunc("/trip-reports", recordsHandler.ListTripReports).Methods("GET")
	apiRoutes.HandleFunc("/trip-reports", recordsHandler.CreateTripReport).Methods("POST")
	apiRoutes.HandleFunc("/estimates", recordsHandler.ListEstimates).Methods("GET")
	apiRoutes.HandleFunc("/estimates", recordsHandler.CreateEstimate).Methods("POST")
	apiRoutes.HandleFunc("/minutes", recordsHandler.ListMinutes).Methods("GET")
	apiRoutes.HandleFunc("/minutes", recordsHandler.CreateMinute).Methods("POST")

	// Embedded web client
	r.PathPrefix("/").Handler(web.Handler())

	return r
}
