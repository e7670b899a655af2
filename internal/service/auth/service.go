// Package auth implements account registration, login, and token validation.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/arjunbhatia/healthlog-backend/internal/config"
	"github.com/arjunbhatia/healthlog-backend/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// Service handles account management and session tokens.
type Service struct {
	log      *slog.Logger
	cfg      config.AuthConfig
	users    userRepo
	tokens   jwtManager
	hashCost int
}

// NewService creates a new auth service.
func NewService(log *slog.Logger, cfg config.AuthConfig, users userRepo, tokens jwtManager) *Service {
	return &Service{
		log:      log.With("service", "auth"),
		cfg:      cfg,
		users:    users,
		tokens:   tokens,
		hashCost: cfg.PasswordHashCost,
	}
}

// Session is the result of a successful registration or login.
type Session struct {
	User        *domain.User
	AccessToken string
}
