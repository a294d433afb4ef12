package domain

import (
	"time"

	"github.com/google/uuid"
)

// City is a listing entry. Inactive cities stay in the table but are hidden
// from the public endpoint.
type City struct {
	ID        uuid.UUID
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
