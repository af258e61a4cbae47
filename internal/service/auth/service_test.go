package auth

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/airecruit/api/internal/domain"
	"github.com/airecruit/api/internal/repository"
	"github.com/airecruit/api/pkg/config"
	jwtpkg "github.com/airecruit/api/pkg/jwt"
)

type userRepoMock struct {
	createFunc     func(ctx context.Context, user *domain.User) error
	getByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	getByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
}

func (m userRepoMock) CreateUser(ctx context.Context, user *domain.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m userRepoMock) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (m userRepoMock) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() config.APIConfig {
	return config.APIConfig{JWTSecret: "test-secret", TokenTTL: time.Hour}
}

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	var stored *domain.User
	repo := userRepoMock{
		createFunc: func(_ context.Context, user *domain.User) error {
			stored = user
			return nil
		},
	}
	svc := New(repo, newLogger(), testConfig())

	user, token, err := svc.Register(context.Background(), "Ann", "ann@x.com", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored == nil {
		t.Fatalf("expected user to be persisted")
	}
	if bytes.Equal(stored.PasswordHash, []byte("secret123")) {
		t.Fatalf("password stored in clear")
	}
	if user.ID == "" || user.Email != "ann@x.com" || user.Name != "Ann" {
		t.Fatalf("unexpected user fields: %+v", user)
	}

	claims, err := jwtpkg.Parse(token, "test-secret")
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != "ann@x.com" || claims.Name != "Ann" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegisterSurfacesStoreError(t *testing.T) {
	repo := userRepoMock{
		createFunc: func(_ context.Context, _ *domain.User) error {
			return errors.New("duplicate key value violates unique constraint")
		},
	}
	svc := New(repo, newLogger(), testConfig())

	if _, _, err := svc.Register(context.Background(), "Ann", "ann@x.com", "secret123"); err == nil {
		t.Fatalf("expected store error to propagate")
	}
}

func TestLoginRoundTrip(t *testing.T) {
	users := make(map[string]*domain.User)
	repo := userRepoMock{
		createFunc: func(_ context.Context, user *domain.User) error {
			users[user.Email] = user
			return nil
		},
		getByEmailFunc: func(_ context.Context, email string) (*domain.User, error) {
			if user, ok := users[email]; ok {
				return user, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	svc := New(repo, newLogger(), testConfig())

	if _, _, err := svc.Register(context.Background(), "Ann", "ann@x.com", "secret123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, token, err := svc.Login(context.Background(), "ann@x.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Email != "ann@x.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	claims, err := svc.Authorize(token)
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	if claims.Email != "ann@x.com" {
		t.Fatalf("unexpected claims email: %s", claims.Email)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := New(userRepoMock{}, newLogger(), testConfig())
	if _, _, err := svc.Login(context.Background(), "missing@x.com", "secret123"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	users := make(map[string]*domain.User)
	repo := userRepoMock{
		createFunc: func(_ context.Context, user *domain.User) error {
			users[user.Email] = user
			return nil
		},
		getByEmailFunc: func(_ context.Context, email string) (*domain.User, error) {
			if user, ok := users[email]; ok {
				return user, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	svc := New(repo, newLogger(), testConfig())
	if _, _, err := svc.Register(context.Background(), "Ann", "ann@x.com", "secret123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "ann@x.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthorizeRejectsMissingAndTamperedTokens(t *testing.T) {
	svc := New(userRepoMock{}, newLogger(), testConfig())

	if _, err := svc.Authorize("  "); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}

	token, err := jwtpkg.GenerateToken("u1", "ann@x.com", "Ann", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := svc.Authorize(token + "x"); err == nil {
		t.Fatalf("expected tampered token to be rejected")
	}

	expired, err := jwtpkg.GenerateToken("u1", "ann@x.com", "Ann", "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("generate expired token: %v", err)
	}
	if _, err := svc.Authorize(expired); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}
