package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/airecruit/api/internal/domain"
	"github.com/airecruit/api/internal/repository"
	"github.com/airecruit/api/pkg/config"
	"github.com/airecruit/api/pkg/crypto"
	jwtpkg "github.com/airecruit/api/pkg/jwt"
)

// ErrUserNotFound is returned when login references an unknown email.
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidCredentials is returned when the password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrMissingToken is returned when no bearer token was supplied.
var ErrMissingToken = errors.New("token required")

// Service handles authentication workflows.
type Service struct {
	users  repository.UserRepository
	logger *slog.Logger
	cfg    config.APIConfig
}

// New constructs a Service.
func New(users repository.UserRepository, logger *slog.Logger, cfg config.APIConfig) Service {
	return Service{users: users, logger: logger, cfg: cfg}
}

// Register stores a new user with a hashed password and issues a token.
func (s Service) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}
	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	s.logger.Info("user registered", "user_id", user.ID)
	return user, token, nil
}

// Login authenticates a user by email and password and issues a token.
func (s Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}
	if err := crypto.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	s.logger.Info("user logged in", "user_id", user.ID)
	return user, token, nil
}

// Authorize validates a bearer token and returns the decoded claims.
func (s Service) Authorize(token string) (*jwtpkg.Claims, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return nil, ErrMissingToken
	}
	return jwtpkg.Parse(trimmed, s.cfg.JWTSecret)
}

func (s Service) issueToken(user *domain.User) (string, error) {
	return jwtpkg.GenerateToken(user.ID, user.Email, user.Name, s.cfg.JWTSecret, s.cfg.TokenTTL)
}
