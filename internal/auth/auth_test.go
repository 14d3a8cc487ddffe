package auth

import (
	"database/sql"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soranjiro/AxI-itinerary/internal/model"
)

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*model.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*model.Session)}
}

func (s *fakeSessionStore) Create(session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.sessions[session.Token] = &copied
	return nil
}

func (s *fakeSessionStore) GetByToken(token string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *session
	return &copied, nil
}

func (s *fakeSessionStore) Delete(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func TestBcryptHasherRoundTrip(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("hunter2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2"))
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, h.Compare(hash, "hunter2"))
	assert.False(t, h.Compare(hash, "hunter3"))
}

func TestBcryptHasherDistinctSalts(t *testing.T) {
	h := NewBcryptHasher(4)
	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSessionIssueAndResolve(t *testing.T) {
	store := newFakeSessionStore()
	mgr := NewSessionManager(store, "test-secret", time.Hour)

	cookie, err := mgr.Issue("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, cookie)

	userID, err := mgr.Resolve(cookie)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestSessionResolveRejectsGarbage(t *testing.T) {
	mgr := NewSessionManager(newFakeSessionStore(), "test-secret", time.Hour)

	for _, cookie := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := mgr.Resolve(cookie)
		assert.ErrorIs(t, err, ErrInvalidSession, cookie)
	}
}

func TestSessionResolveRejectsWrongSecret(t *testing.T) {
	store := newFakeSessionStore()
	cookie, err := NewSessionManager(store, "secret-a", time.Hour).Issue("user-1")
	require.NoError(t, err)

	_, err = NewSessionManager(store, "secret-b", time.Hour).Resolve(cookie)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionResolveRejectsRevoked(t *testing.T) {
	store := newFakeSessionStore()
	mgr := NewSessionManager(store, "test-secret", time.Hour)

	cookie, err := mgr.Issue("user-1")
	require.NoError(t, err)
	require.NoError(t, mgr.Revoke(cookie))

	_, err = mgr.Resolve(cookie)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionResolveRejectsExpiredRow(t *testing.T) {
	store := newFakeSessionStore()
	mgr := NewSessionManager(store, "test-secret", time.Hour)

	cookie, err := mgr.Issue("user-1")
	require.NoError(t, err)

	// Age the stored row past its expiry without touching the cookie.
	store.mu.Lock()
	for _, session := range store.sessions {
		session.ExpiresAt = time.Now().Add(-time.Minute)
	}
	store.mu.Unlock()

	_, err = mgr.Resolve(cookie)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionRevokeIgnoresUnparsable(t *testing.T) {
	mgr := NewSessionManager(newFakeSessionStore(), "test-secret", time.Hour)
	assert.NoError(t, mgr.Revoke("garbage"))
}
