package auth

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/soranjiro/AxI-itinerary/internal/model"
)

// ErrInvalidSession is returned when a session cookie fails signature, expiry
// or store checks.
var ErrInvalidSession = errors.New("invalid session")

// SessionStore is the subset of the session repository the manager needs.
type SessionStore interface {
	Create(s *model.Session) error
	GetByToken(token string) (*model.Session, error)
	Delete(token string) error
}

// SessionManager issues and resolves session cookies. The cookie value is an
// HS256 JWT wrapping an opaque token; resolution checks the signature and
// expiry first, then requires a matching row in the session store.
type SessionManager struct {
	store  SessionStore
	secret []byte
	ttl    time.Duration
}

// NewSessionManager creates a session manager.
func NewSessionManager(store SessionStore, secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{store: store, secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured session lifetime.
func (m *SessionManager) TTL() time.Duration { return m.ttl }

// Issue creates a session row for userID and returns the signed cookie value.
func (m *SessionManager) Issue(userID string) (string, error) {
	now := time.Now().UTC()
	session := &model.Session{
		ID:        uuid.NewString(),
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(m.ttl),
		CreatedAt: now,
	}
	if err := m.store.Create(session); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sub": userID,
		"tok": session.Token,
		"exp": session.ExpiresAt.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Resolve validates a cookie value and returns the user id it belongs to.
func (m *SessionManager) Resolve(cookie string) (string, error) {
	token, userID, err := m.parse(cookie)
	if err != nil {
		return "", err
	}

	session, err := m.store.GetByToken(token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidSession
		}
		return "", err
	}
	if session.UserID != userID || time.Now().After(session.ExpiresAt) {
		return "", ErrInvalidSession
	}
	return session.UserID, nil
}

// Revoke deletes the session row behind a cookie value. Unparsable cookies
// are ignored so logout is idempotent.
func (m *SessionManager) Revoke(cookie string) error {
	token, _, err := m.parse(cookie)
	if err != nil {
		return nil
	}
	return m.store.Delete(token)
}

func (m *SessionManager) parse(cookie string) (token, userID string, err error) {
	parsed, err := jwt.Parse(cookie, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", "", ErrInvalidSession
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrInvalidSession
	}
	token, _ = claims["tok"].(string)
	userID, _ = claims["sub"].(string)
	if token == "" || userID == "" {
		return "", "", ErrInvalidSession
	}
	return token, userID, nil
}
