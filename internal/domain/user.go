package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the health tracker.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
