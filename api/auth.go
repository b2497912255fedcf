package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sitedesk/sitedesk/internal/session"
	"github.com/sitedesk/sitedesk/pkg/repository"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	userRepo repository.UserRepo
	sessions *session.Store
	secure   bool
}

// NewAuthHandler creates a new AuthHandler. secure controls whether the
// session cookie is marked Secure (production mode).
func NewAuthHandler(ur repository.UserRepo, sessions *session.Store, secure bool) *AuthHandler {
	return &AuthHandler{userRepo: ur, sessions: sessions, secure: secure}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type meResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, "missing fields", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	// A missing user and a wrong password produce the same response so the
	// endpoint does not leak which usernames exist.
	user, err := h.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil || user == nil {
		writeError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	sess := h.sessions.Create(user.ID, user.Username, user.Role)
	h.setSessionCookie(w, sess.Token, int(h.sessions.TTL().Seconds()))

	writeJSON(w, loginResponse{ID: user.ID, Username: user.Username, Role: user.Role}, http.StatusOK)
}

// Logout destroys the session unconditionally. It succeeds even when no
// session cookie is present.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		h.sessions.Delete(cookie.Value)
	}
	h.setSessionCookie(w, "", -1)

	writeJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// Me returns the identity carried by the current session. It sits behind
// RequireSession, so a nil session here means a wiring bug, not a client error.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	if sess == nil {
		writeError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	writeJSON(w, meResponse{ID: sess.UserID, Username: sess.Username}, http.StatusOK)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, value string, maxAge int) {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
		Secure:   h.secure,
		MaxAge:   maxAge,
	}
	if maxAge > 0 {
		cookie.Expires = time.Now().UTC().Add(time.Duration(maxAge) * time.Second)
	}
	http.SetCookie(w, cookie)
}
