package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account record. PasswordHash is the bcrypt encoding and never
// leaves the process; response shapes are built from the other fields.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
