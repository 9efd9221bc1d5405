package models

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// User represents an account in the system. IsAdmin gates write access to
// catalog records; any authenticated user may read them and create orders.
type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsAdmin      bool      `json:"is_admin" db:"is_admin"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// FullName returns the user's full name
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

var userEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// UserRegisterRequest represents the data needed to register a new user
type UserRegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Validate validates user registration data
func (req *UserRegisterRequest) Validate() error {
	if req.Email == "" {
		return errors.New("email is required")
	}

	if len(req.Email) > 255 {
		return errors.New("email must be less than 255 characters")
	}

	if !userEmailRegex.MatchString(req.Email) {
		return errors.New("email format is invalid")
	}

	if len(req.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	return nil
}

// UserLoginRequest represents login credentials
type UserLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
