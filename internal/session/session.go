package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the server-side state a cookie token maps to.
type Session struct {
	Token    string
	UserID   int64
	Username string
	Role     string
	Expires  time.Time
}

// Store is an in-memory session store. Sessions live for the configured TTL;
// expired entries are dropped lazily on lookup rather than by a background
// sweeper, since the server runs no background tasks.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*Session
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Store{ttl: ttl, sessions: make(map[string]*Session)}
}

// Create establishes a new session for the given identity and returns the
// opaque token to hand to the client.
func (s *Store) Create(userID int64, username, role string) *Session {
	sess := &Session{
		Token:    uuid.NewString(),
		UserID:   userID,
		Username: username,
		Role:     role,
		Expires:  time.Now().UTC().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()

	return sess
}

// Get returns the session for a token, or false if the token is unknown or
// expired. An expired entry is removed on the way out.
func (s *Store) Get(token string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	if time.Now().UTC().After(sess.Expires) {
		delete(s.sessions, token)
		return nil, false
	}

	return sess, true
}

// Delete removes a session. Unknown tokens are a no-op, so logout stays
// idempotent.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// TTL reports the configured session lifetime.
func (s *Store) TTL() time.Duration {
	return s.ttl
}
