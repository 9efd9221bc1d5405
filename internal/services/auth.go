package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"train-booking-platform/internal/models"
	"train-booking-platform/internal/utils"
)

// UserRepository interface for user data operations
type UserRepository interface {
	Create(email, firstName, lastName, passwordHash string, isAdmin bool) (*models.User, error)
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// Claims carries the authenticated identity inside a JWT. IsAdmin gates
// write access to catalog records.
type Claims struct {
	UserID  int  `json:"user_id"`
	IsAdmin bool `json:"is_admin"`
	jwt.StandardClaims
}

// AuthService handles registration, login and token validation
type AuthService struct {
	userRepo UserRepository
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// Register creates a new non-admin user account
func (s *AuthService) Register(req *models.UserRegisterRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(req.Email, req.FirstName, req.LastName, hash, false)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and returns a signed bearer token
func (s *AuthService) Login(req *models.UserLoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return "", nil, models.ErrUnauthorized
		}
		return "", nil, err
	}

	ok, err := utils.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		return "", nil, models.ErrUnauthorized
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// ValidateToken parses a bearer token and loads the user it identifies
func (s *AuthService) ValidateToken(tokenString string) (*models.User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, models.ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, models.ErrUnauthorized
	}

	return user, nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.tokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
