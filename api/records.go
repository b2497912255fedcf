package api

import (
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/qri-io/jsonschema"
	"github.com/sitedesk/sitedesk/pkg/models"
	"github.com/sitedesk/sitedesk/pkg/repository"
)

// RecordsHandler serves the four record resources. Each resource exposes the
// same pair of endpoints: list everything newest first, and create one row
// tagged with the session's user id.
type RecordsHandler struct {
	inspectionRepo repository.InspectionRepo
	tripReportRepo repository.TripReportRepo
	estimateRepo   repository.EstimateRepo
	minuteRepo     repository.MinuteRepo
}

func NewRecordsHandler(
	ir repository.InspectionRepo,
	tr repository.TripReportRepo,
	er repository.EstimateRepo,
	mr repository.MinuteRepo,
) *RecordsHandler {
	return &RecordsHandler{
		inspectionRepo: ir,
		tripReportRepo: tr,
		estimateRepo:   er,
		minuteRepo:     mr,
	}
}

type createResponse struct {
	ID int64 `json:"id"`
}

// decodeValidated reads the request body, checks it against the resource
// schema and unmarshals it into dst. It writes the error response itself and
// reports whether the caller may proceed.
func decodeValidated(w http.ResponseWriter, r *http.Request, schema *jsonschema.Schema, dst any) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return false
	}

	keyErrs, err := schema.ValidateBytes(r.Context(), body)
	if err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return false
	}
	if len(keyErrs) > 0 {
		logger.Info("rejected create payload", slog.String("path", r.URL.Path), slog.String("reason", keyErrs[0].Message))
		writeError(w, "invalid request body", http.StatusBadRequest)
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return false
	}

	return true
}

type inspectionRequest struct {
	ProjectName string `json:"project_name"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Findings    string `json:"findings"`
	Status      string `json:"status"`
}

func (h *RecordsHandler) CreateInspection(w http.ResponseWriter, r *http.Request) {
	var req inspectionRequest
	if !decodeValidated(w, r, inspectionSchema, &req) {
		return
	}

	sess := sessionFromContext(r.Context())
	if sess == nil {
		writeError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	i := &models.Inspection{
		UserID:      sess.UserID,
		ProjectName: req.ProjectName,
		Date:        req.Date,
		Location:    req.Location,
		Findings:    req.Findings,
		Status:      req.Status,
	}
	id, err := h.inspectionRepo.CreateInspection(r.Context(), i)
	if err != nil {
		writeError(w, "failed to store inspection", http.StatusInternalServerError)
		return
	}

	writeJSON(w, createResponse{ID: id}, http.StatusOK)
}

func (h *RecordsHandler) ListInspections(w http.ResponseWriter, r *http.Request) {
	rows, err := h.inspectionRepo.ListInspections(r.Context())
	if err != nil {
		writeError(w, "failed to list inspections", http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []models.Inspection{}
	}

	writeJSON(w, rows, http.StatusOK)
}

type tripReportRequest struct {
	Destination string `json:"destination"`
	DateStart   string `json:"date_start"`
	DateEnd     string `json:"date_end"`
	Purpose     string `json:"purpose"`
	Results     string `json:"results"`
	Expenses    int64  `json:"expenses"`
}

func (h *RecordsHandler) CreateTripReport(w http.ResponseWriter, r *http.Request) {
	var req tripReportRequest
	if !decodeValidated(w, r, tripReportSchema, &req) {
		return
	}

	sess := sessionFromContext(r.Context())
	if sess == nil {
		writeError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	tr := &models.TripReport{
		UserID:      sess.UserID,
		Destination: req.Destination,
		DateStart:   req.DateStart,
		DateEnd:     req.DateEnd,
		Purpose:     req.Purpose,
		Results:     req.Results,
		Expenses:    req.Expenses,
	}
	id, err := h.tripReportRepo.CreateTripReport(r.Context(), tr)
	if err != nil {
		writeError(w, "failed to store trip report", http.StatusInternalServerError)
		return
	}

	writeJSON(w, createResponse{ID: id}, http.StatusOK)
}

func (h *RecordsHandler) ListTripReports(w http.ResponseWriter, r *http.Request) {
	rows, err := h.tripReportRepo.ListTripReports(r.Context())
	if err != nil {
		writeError(w, "failed to list trip reports", http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []models.TripReport{}
	}

	writeJSON(w, rows, http.StatusOK)
}

type estimateRequest struct {
	ClientName  string `json:"client_name"`
	ProjectName string `json:"project_name"`
	Amount      int64  `json:"amount"`
	Details     string `json:"details"`
	Status      string `json:"status"`
}

func (h *RecordsHandler) CreateEstimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if !decodeValidated(w, r, estimateSchema, &req) {
		return
	}

	sess := sessionFromContext(r.Context())
	if sess == nil {
		writeError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	e := &models.Estimate{
		UserID:      sess.UserID,
		ClientName:  req.ClientName,
		ProjectName: req.ProjectName,
		Amount:      req.Amount,
		Details:     req.Details,
		Status:      req.Status,
	}
	id, err := h.estimateRepo.CreateEstimate(r.Context(), e)
	if err != nil {
		writeError(w, "failed to store estimate", http.StatusInternalServerError)
		return
	}

	writeJSON(w, createResponse{ID: id}, http.StatusOK)
}

func (h *RecordsHandler) ListEstimates(w http.ResponseWriter, r *http.Request) {
	rows, err := h.estimateRepo.ListEstimates(r.Context())
	if err != nil {
		writeError(w, "failed to list estimates", http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []models.Estimate{}
	}

	writeJSON(w, rows, http.StatusOK)
}

type minuteRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Attendees   string `json:"attendees"`
	Content     string `json:"content"`
	ActionItems string `json:"action_items"`
}

func (h *RecordsHandler) CreateMinute(w http.ResponseWriter, r *http.Request) {
	var req minuteRequest
	if !decodeValidated(w, r, minuteSchema, &req) {
		return
	}

	sess := sessionFromContext(r.Context())
	if sess == nil {
		writeError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	m := &models.Minute{
		UserID:      sess.UserID,
		Title:       req.Title,
		Date:        req.Date,
		Attendees:   req.Attendees,
		Content:     req.Content,
		ActionItems: req.ActionItems,
	}
	id, err := h.minuteRepo.CreateMinute(r.Context(), m)
	if err != nil {
		writeError(w, "failed to store minute", http.StatusInternalServerError)
		return
	}

	writeJSON(w, createResponse{ID: id}, http.StatusOK)
}

func (h *RecordsHandler) ListMinutes(w http.ResponseWriter, r *http.Request) {
	rows, err := h.minuteRepo.ListMinutes(r.Context())
	if err != nil {
		writeError(w, "failed to list minutes", http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []models.Minute{}
	}

	writeJSON(w, rows, http.StatusOK)
}
