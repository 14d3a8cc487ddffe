package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/soranjiro/AxI-itinerary/internal/apperror"
	"github.com/soranjiro/AxI-itinerary/internal/auth"
	"github.com/soranjiro/AxI-itinerary/internal/model"
	"github.com/soranjiro/AxI-itinerary/internal/validate"
)

// UserRepo is the storage surface the auth service needs.
type UserRepo interface {
	Create(user *model.User) error
	GetByEmail(email string) (*model.User, error)
	GetByID(id string) (*model.User, error)
	EmailExists(email string) (bool, error)
	UpdateProfile(user *model.User) (int64, error)
}

// AuthService handles registration, login and profile management.
type AuthService struct {
	users    UserRepo
	hasher   auth.PasswordHasher
	sessions *auth.SessionManager
	now      func() time.Time
}

// NewAuthService creates a new auth service.
func NewAuthService(users UserRepo, hasher auth.PasswordHasher, sessions *auth.SessionManager) *AuthService {
	return &AuthService{users: users, hasher: hasher, sessions: sessions, now: time.Now}
}

// RegisterInput is the payload for user registration.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Register validates the input and creates a new user. The returned user has
// no password hash.
func (s *AuthService) Register(in RegisterInput) (*model.User, error) {
	if !validate.Required(in.Email) || !validate.Required(in.Password) {
		return nil, apperror.BadRequest("Email and password are required")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !validate.Email(email) {
		return nil, apperror.BadRequest("Invalid email address")
	}
	if !validate.RegisterPassword(in.Password) {
		return nil, apperror.BadRequest("Password must be at least 6 characters")
	}

	exists, err := s.users.EmailExists(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("User already exists")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now().UTC()
	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		user.Name = &name
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// Login checks credentials and issues a session. Returns the user and the
// signed session cookie value.
func (s *AuthService) Login(email, password string) (*model.User, string, error) {
	if !validate.Required(email) || !validate.Required(password) {
		return nil, "", apperror.BadRequest("Email and password are required")
	}

	user, err := s.users.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", apperror.Unauthorized("Invalid credentials")
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, "", apperror.Unauthorized("Invalid credentials")
	}

	cookie, err := s.sessions.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	user.PasswordHash = ""
	return user, cookie, nil
}

// Logout revokes the session behind the cookie value.
func (s *AuthService) Logout(cookie string) error {
	return s.sessions.Revoke(cookie)
}

// ResolveSession returns the user id a session cookie belongs to.
func (s *AuthService) ResolveSession(cookie string) (string, error) {
	userID, err := s.sessions.Resolve(cookie)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidSession) {
			return "", apperror.Unauthorized("Invalid session")
		}
		return "", err
	}
	return userID, nil
}

// SessionTTL exposes the session lifetime for cookie max-age.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessions.TTL()
}

// GetUser returns a user without the password hash.
func (s *AuthService) GetUser(id string) (*model.User, error) {
	if id == "" {
		return nil, apperror.BadRequest("User ID is required")
	}
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateProfile changes a user's display name.
func (s *AuthService) UpdateProfile(id, name string) (*model.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		user.Name = nil
	} else {
		user.Name = &trimmed
	}
	user.UpdatedAt = s.now().UTC()
	affected, err := s.users.UpdateProfile(user)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}
