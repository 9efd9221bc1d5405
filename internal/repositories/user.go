package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"train-booking-platform/internal/models"
)

// UserRepository handles user data operations
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user with a pre-hashed password
func (r *UserRepository) Create(email, firstName, lastName, passwordHash string, isAdmin bool) (*models.User, error) {
	query := `
		INSERT INTO users (email, first_name, last_name, password_hash, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, first_name, last_name, password_hash, is_admin, created_at`

	user := &models.User{}
	err := r.db.QueryRow(query, email, firstName, lastName, passwordHash, isAdmin, time.Now().UTC()).Scan(
		&user.ID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.PasswordHash,
		&user.IsAdmin,
		&user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("failed to create user: %w", translateStorageErr(err))
	}

	return user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id int) (*models.User, error) {
	return r.getBy("id", id)
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	return r.getBy("email", email)
}

func (r *UserRepository) getBy(column string, value interface{}) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, email, first_name, last_name, password_hash, is_admin, created_at
		FROM users
		WHERE %s = $1`, column)

	user := &models.User{}
	err := r.db.QueryRow(query, value).Scan(
		&user.ID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.PasswordHash,
		&user.IsAdmin,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", translateStorageErr(err))
	}

	return user, nil
}
