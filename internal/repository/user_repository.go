package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/soranjiro/AxI-itinerary/internal/model"
)

// UserRepository provides access to user rows.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user row.
func (r *UserRepository) Create(user *model.User) error {
	query := r.db.Rebind(`INSERT INTO users (id, email, password_hash, name, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?)`)
	_, err := r.db.Exec(query, user.ID, user.Email, user.PasswordHash, user.Name, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByEmail looks up a user by lower-cased email. sql.ErrNoRows when absent.
func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, r.db.Rebind("SELECT * FROM users WHERE email=?"), email)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given id. sql.ErrNoRows when absent.
func (r *UserRepository) GetByID(id string) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, r.db.Rebind("SELECT * FROM users WHERE id=?"), id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailExists reports whether a user with the email is already registered.
func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int
	err := r.db.Get(&count, r.db.Rebind("SELECT COUNT(1) FROM users WHERE email=?"), email)
	if err != nil {
		return false, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	return count > 0, nil
}

// UpdateProfile updates the mutable profile fields. Returns affected rows.
func (r *UserRepository) UpdateProfile(user *model.User) (int64, error) {
	query := r.db.Rebind("UPDATE users SET name=?, updated_at=? WHERE id=?")
	res, err := r.db.Exec(query, user.Name, user.UpdatedAt, user.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to update user: %w", err)
	}
	return res.RowsAffected()
}
