package repository

import (
	"context"

	"github.com/airecruit/api/internal/domain"
)

// UserRepository persists users.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
}

// ReportRepository stores compatibility analysis history.
type ReportRepository interface {
	CreateReport(ctx context.Context, report *domain.CompatibilityReport) error
	ListReportsByUser(ctx context.Context, userID string, limit int) ([]domain.CompatibilityReport, error)
}
