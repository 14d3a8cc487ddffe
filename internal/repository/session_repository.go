package repository

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/soranjiro/AxI-itinerary/internal/model"
)

// SessionRepository provides access to server-side session rows.
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session row.
func (r *SessionRepository) Create(s *model.Session) error {
	query := r.db.Rebind(`INSERT INTO sessions (id, token, user_id, expires_at, created_at)
	          VALUES (?, ?, ?, ?, ?)`)
	_, err := r.db.Exec(query, s.ID, s.Token, s.UserID, s.ExpiresAt, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetByToken returns the session for token. sql.ErrNoRows when absent.
func (r *SessionRepository) GetByToken(token string) (*model.Session, error) {
	var s model.Session
	err := r.db.Get(&s, r.db.Rebind("SELECT * FROM sessions WHERE token=?"), token)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes the session for token.
func (r *SessionRepository) Delete(token string) error {
	_, err := r.db.Exec(r.db.Rebind("DELETE FROM sessions WHERE token=?"), token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpired removes sessions whose expiry is before now.
func (r *SessionRepository) DeleteExpired(now time.Time) error {
	_, err := r.db.Exec(r.db.Rebind("DELETE FROM sessions WHERE expires_at < ?"), now)
	if err != nil {
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return nil
}
