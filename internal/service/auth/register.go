package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/arjunbhatia/healthlog-backend/internal/domain"
)

// Register creates a new account and returns a session for it.
// Returns domain.ErrAlreadyExists when the email is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Username:     strings.TrimSpace(input.Username),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.GenerateAccessToken(created.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	s.log.Info("user registered", "user_id", created.ID)

	return &Session{User: created, AccessToken: token}, nil
}
