package service

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/wanderlabs/citypass/internal/domain"
	"github.com/wanderlabs/citypass/internal/store"
	"github.com/wanderlabs/citypass/pkg/cryptox"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid password")
)

// UserService owns registration and credential verification. It is stateless
// over the store; bcrypt work runs behind a bounded gate so a burst of logins
// cannot monopolise every CPU and starve request handling.
type UserService struct {
	Store store.Store

	hashGate chan struct{}
}

func NewUserService(st store.Store) *UserService {
	return &UserService{
		Store:    st,
		hashGate: make(chan struct{}, runtime.GOMAXPROCS(0)),
	}
}

// Register creates a new account with a bcrypt-hashed password. The duplicate
// check runs before hashing so a rejected registration never pays for a hash.
// The unique index still backstops concurrent registrations.
func (s *UserService) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.User{}, ErrUserExists
	case !errors.Is(err, store.ErrNotFound):
		return domain.User{}, err
	}

	hash, err := s.hashPassword(ctx, password)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUserExists
		}
		return domain.User{}, err
	}

	return user, nil
}

// Authenticate verifies an email/password pair and returns the user.
// Unknown email and wrong password stay distinguishable for the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}

	if err := s.verifyPassword(ctx, password, user.PasswordHash); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// ListUsers returns all users ordered by creation date.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

func (s *UserService) hashPassword(ctx context.Context, password string) (string, error) {
	release, err := s.acquireGate(ctx)
	if err != nil {
		return "", err
	}
	defer release()

	return cryptox.HashPassword(password)
}

func (s *UserService) verifyPassword(ctx context.Context, password, hash string) error {
	release, err := s.acquireGate(ctx)
	if err != nil {
		return err
	}
	defer release()

	return cryptox.VerifyPassword(password, hash)
}

func (s *UserService) acquireGate(ctx context.Context) (func(), error) {
	select {
	case s.hashGate <- struct{}{}:
		return func() { <-s.hashGate }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
