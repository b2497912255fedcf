package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/sitedesk/sitedesk/api"
	"github.com/sitedesk/sitedesk/internal/session"
	"github.com/sitedesk/sitedesk/pkg/models"
	"github.com/sitedesk/sitedesk/pkg/repository/mock"
)

func newRecordsRouter(mocks *mock.Mocks, sessions *session.Store) *mux.Router {
	handler := api.NewRecordsHandler(mocks.InspectionRepo, mocks.TripReportRepo, mocks.EstimateRepo, mocks.MinuteRepo)
	r := mux.NewRouter()
	gated := r.PathPrefix("/api").Subrouter()
	gated.Use(api.RequireSession(sessions))
	gated.HandleFunc("/inspections", handler.ListInspections).Methods("GET")
	gated.HandleFunc("/inspections", handler.CreateInspection).Methods("POST")
	gated.HandleFunc("/trip-reports", handler.ListTripReports).Methods("GET")
	gated.HandleFunc("/trip-reports", handler.CreateTripReport).Methods("POST")
	gated.HandleFunc("/estimates", handler.ListEstimates).Methods("GET")
	gated.HandleFunc("/estimates", handler.CreateEstimate).Methods("POST")
	gated.HandleFunc("/minutes", handler.ListMinutes).Methods("GET")
	gated.HandleFunc("/minutes", handler.CreateMinute).Methods("POST")
	return r
}

func loginCookie(sessions *session.Store) *http.Cookie {
	sess := sessions.Create(1, "admin", "admin")
	return &http.Cookie{Name: api.SessionCookieName, Value: sess.Token}
}

var validPayloads = map[string]map[string]any{
	"/api/inspections": {
		"project_name": "North Bridge",
		"date":         "2026-03-14",
		"location":     "Pier 4",
		"findings":     "Hairline cracks on the east footing",
		"status":       "pending",
	},
	"/api/trip-reports": {
		"destination": "Sendai",
		"date_start":  "2026-02-02",
		"date_end":    "2026-02-04",
		"purpose":     "Subcontractor negotiation",
		"results":     "Agreed on revised delivery schedule",
		"expenses":    48200,
	},
	"/api/estimates": {
		"client_name":  "Aoba Housing",
		"project_name": "Warehouse extension",
		"amount":       12500000,
		"details":      "Steel frame, 420 sqm",
		"status":       "draft",
	},
	"/api/minutes": {
		"title":        "Weekly site meeting",
		"date":         "2026-03-10",
		"attendees":    "Sato, Tanaka, Mori",
		"content":      "Reviewed crane schedule",
		"action_items": "Order safety railings",
	},
}

// Every resource rejects an unauthenticated create and leaves the stored
// rows untouched.
func TestCreateWithoutSession(t *testing.T) {
	for path, payload := range validPayloads {
		t.Run(path, func(t *testing.T) {
			mocks := mock.NewMocks()
			sessions := session.NewStore(time.Hour)
			router := newRecordsRouter(mocks, sessions)

			b, _ := json.Marshal(payload)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b)))
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401 got %d", w.Code)
			}

			total := len(mocks.InspectionRepo.Rows) + len(mocks.TripReportRepo.Rows) +
				len(mocks.EstimateRepo.Rows) + len(mocks.MinuteRepo.Rows)
			if total != 0 {
				t.Fatalf("unauthenticated create reached the store: %d rows", total)
			}
		})
	}
}

func TestCreateAndListRoundTrip(t *testing.T) {
	for path, payload := range validPayloads {
		t.Run(path, func(t *testing.T) {
			mocks := mock.NewMocks()
			sessions := session.NewStore(time.Hour)
			router := newRecordsRouter(mocks, sessions)
			cookie := loginCookie(sessions)

			b, _ := json.Marshal(payload)
			req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
			req.AddCookie(cookie)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("create: expected 200 got %d body=%s", w.Code, w.Body.String())
			}
			var created struct {
				ID int64 `json:"id"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
				t.Fatalf("unmarshal create response: %v", err)
			}
			if created.ID == 0 {
				t.Fatalf("expected non-zero id")
			}

			req = httptest.NewRequest(http.MethodGet, path, nil)
			req.AddCookie(cookie)
			w = httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("list: expected 200 got %d", w.Code)
			}
			var rows []map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
				t.Fatalf("unmarshal list response: %v", err)
			}
			if len(rows) != 1 {
				t.Fatalf("expected 1 row got %d", len(rows))
			}
			if int64(rows[0]["id"].(float64)) != created.ID {
				t.Fatalf("listed row id %v does not match created id %d", rows[0]["id"], created.ID)
			}
			for k, v := range payload {
				got := rows[0][k]
				switch want := v.(type) {
				case string:
					if got != want {
						t.Fatalf("field %s: got %v want %v", k, got, want)
					}
				case int:
					if int(got.(float64)) != want {
						t.Fatalf("field %s: got %v want %v", k, got, want)
					}
				}
			}
			if int64(rows[0]["user_id"].(float64)) != 1 {
				t.Fatalf("row not tagged with session user id: %v", rows[0]["user_id"])
			}
		})
	}
}

// New rows must list before previously inserted ones.
func TestListNewestFirst(t *testing.T) {
	mocks := mock.NewMocks()
	sessions := session.NewStore(time.Hour)
	router := newRecordsRouter(mocks, sessions)
	cookie := loginCookie(sessions)

	for _, name := range []string{"first", "second", "third"} {
		payload := map[string]any{
			"project_name": name,
			"date":         "2026-03-14",
			"location":     "yard",
			"findings":     "none",
			"status":       "pending",
		}
		b, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/api/inspections", bytes.NewReader(b))
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("create %s: expected 200 got %d", name, w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/inspections", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	var rows []models.Inspection
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows got %d", len(rows))
	}
	for i, want := range []string{"third", "second", "first"} {
		if rows[i].ProjectName != want {
			t.Fatalf("position %d: got %s want %s", i, rows[i].ProjectName, want)
		}
	}
}

func TestListEmptyIsArray(t *testing.T) {
	mocks := mock.NewMocks()
	sessions := session.NewStore(time.Hour)
	router := newRecordsRouter(mocks, sessions)
	cookie := loginCookie(sessions)

	for path := range validPayloads {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, w.Code)
		}
		if body := bytes.TrimSpace(w.Body.Bytes()); !bytes.Equal(body, []byte("[]")) {
			t.Fatalf("%s: expected empty array got %s", path, body)
		}
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		path string
		body any
	}{
		{
			name: "Inspection_MissingStatus",
			path: "/api/inspections",
			body: map[string]any{"project_name": "x", "date": "2026-01-01", "location": "y", "findings": "z"},
		},
		{
			name: "TripReport_StringExpenses",
			path: "/api/trip-reports",
			body: map[string]any{"destination": "x", "date_start": "a", "date_end": "b", "purpose": "c", "results": "d", "expenses": "lots"},
		},
		{
			name: "Estimate_MissingAmount",
			path: "/api/estimates",
			body: map[string]any{"client_name": "x", "project_name": "y", "details": "z", "status": "draft"},
		},
		{
			name: "Minute_NotAnObject",
			path: "/api/minutes",
			body: "just a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := mock.NewMocks()
			sessions := session.NewStore(time.Hour)
			router := newRecordsRouter(mocks, sessions)
			cookie := loginCookie(sessions)

			b, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewReader(b))
			req.AddCookie(cookie)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 got %d body=%s", w.Code, w.Body.String())
			}

			total := len(mocks.InspectionRepo.Rows) + len(mocks.TripReportRepo.Rows) +
				len(mocks.EstimateRepo.Rows) + len(mocks.MinuteRepo.Rows)
			if total != 0 {
				t.Fatalf("invalid payload reached the store: %d rows", total)
			}
		})
	}
}

// A failing store surfaces as a generic 500 error body, for creates and
// lists alike.
func TestStoreFailure(t *testing.T) {
	payload, _ := json.Marshal(validPayloads["/api/inspections"])

	tests := []struct {
		name    string
		method  string
		path    string
		body    []byte
		prepare func(m *mock.Mocks)
	}{
		{
			name:    "CreateFails",
			method:  http.MethodPost,
			path:    "/api/inspections",
			body:    payload,
			prepare: func(m *mock.Mocks) { m.InspectionRepo.CreateErr = errors.New("disk full") },
		},
		{
			name:    "ListFails",
			method:  http.MethodGet,
			path:    "/api/inspections",
			prepare: func(m *mock.Mocks) { m.InspectionRepo.ListErr = errors.New("disk full") },
		},
		{
			name:    "ListTripReportsFails",
			method:  http.MethodGet,
			path:    "/api/trip-reports",
			prepare: func(m *mock.Mocks) { m.TripReportRepo.ListErr = errors.New("disk full") },
		},
		{
			name:    "CreateEstimateFails",
			method:  http.MethodPost,
			path:    "/api/estimates",
			body:    mustMarshal(validPayloads["/api/estimates"]),
			prepare: func(m *mock.Mocks) { m.EstimateRepo.CreateErr = errors.New("disk full") },
		},
		{
			name:    "CreateMinuteFails",
			method:  http.MethodPost,
			path:    "/api/minutes",
			body:    mustMarshal(validPayloads["/api/minutes"]),
			prepare: func(m *mock.Mocks) { m.MinuteRepo.CreateErr = errors.New("disk full") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := mock.NewMocks()
			tt.prepare(mocks)
			sessions := session.NewStore(time.Hour)
			router := newRecordsRouter(mocks, sessions)

			req := httptest.NewRequest(tt.method, tt.path, bytes.NewReader(tt.body))
			req.AddCookie(loginCookie(sessions))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusInternalServerError {
				t.Fatalf("expected 500 got %d body=%s", w.Code, w.Body.String())
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal error body: %v", err)
			}
			if body["error"] == "" {
				t.Fatalf("expected generic error body, got %s", w.Body.String())
			}

			total := len(mocks.InspectionRepo.Rows) + len(mocks.TripReportRepo.Rows) +
				len(mocks.EstimateRepo.Rows) + len(mocks.MinuteRepo.Rows)
			if total != 0 {
				t.Fatalf("failed request left rows behind: %d", total)
			}
		})
	}
}

func mustMarshal(v any) []byte {
	b, _ := json.Marshal(v)
	return b
}
