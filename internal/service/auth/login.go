package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/arjunbhatia/healthlog-backend/internal/domain"
)

// Login verifies credentials and returns a session.
// Wrong email and wrong password both map to domain.ErrUnauthorized so the
// response does not reveal which one was wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*Session, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}

	token, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	s.log.Info("user logged in", "user_id", user.ID)

	return &Session{User: user, AccessToken: token}, nil
}

// ValidateToken checks an access token and returns the authenticated user id.
func (s *Service) ValidateToken(token string) (uuid.UUID, error) {
	userID, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("validate token: %w", domain.ErrUnauthorized)
	}
	return userID, nil
}

// GetUser returns the account for an authenticated user id.
func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
