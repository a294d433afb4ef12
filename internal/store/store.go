package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/wanderlabs/citypass/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement it. Sub-repositories keep concerns tidy and testable.
type Store interface {
	Users() Users
	Cities() Cities

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id uuid.UUID) (domain.User, error)

	// GetUserByEmail is used during login and duplicate checks.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user. Returns ErrAlreadyExists when the
	// email is taken (unique index).
	CreateUser(ctx context.Context, u domain.User) error

	// ListUsers returns all users ordered by creation date.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type Cities interface {
	// ListActiveCities returns cities visible on the public endpoint.
	ListActiveCities(ctx context.Context) ([]domain.City, error)

	// ListCities returns every city, active or not.
	ListCities(ctx context.Context) ([]domain.City, error)

	// CreateCity inserts a new city. Returns ErrAlreadyExists when the
	// name is taken (unique index).
	CreateCity(ctx context.Context, c domain.City) error
}
