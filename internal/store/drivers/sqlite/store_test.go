package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/wanderlabs/citypass/internal/domain"
	"github.com/wanderlabs/citypass/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "citypass-test.db")
	s, err := NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestUser(email string) domain.User {
	now := time.Now().UTC()
	return domain.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefake",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUsersRepo_CreateAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := newTestUser("a@x.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	byEmail, err := s.Users().GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)
	require.Equal(t, u.PasswordHash, byEmail.PasswordHash)
	require.False(t, byEmail.IsVerified)
	require.WithinDuration(t, u.CreatedAt, byEmail.CreatedAt, time.Second)

	byID, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, byID.Email)
}

func TestUsersRepo_NotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Users().GetUserByEmail(ctx, "nobody@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Users().GetUserByID(ctx, uuid.New())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsersRepo_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Users().CreateUser(ctx, newTestUser("dup@x.com")))

	err := s.Users().CreateUser(ctx, newTestUser("dup@x.com"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	users, err := s.Users().ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1, "no new record after duplicate registration")
}

func TestCitiesRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	active := domain.City{ID: uuid.New(), Name: "Brisbane", IsActive: true, CreatedAt: now, UpdatedAt: now}
	hidden := domain.City{ID: uuid.New(), Name: "Atlantis", IsActive: false, CreatedAt: now, UpdatedAt: now}

	require.NoError(t, s.Cities().CreateCity(ctx, active))
	require.NoError(t, s.Cities().CreateCity(ctx, hidden))

	publicList, err := s.Cities().ListActiveCities(ctx)
	require.NoError(t, err)
	require.Len(t, publicList, 1)
	require.Equal(t, "Brisbane", publicList[0].Name)

	adminList, err := s.Cities().ListCities(ctx)
	require.NoError(t, err)
	require.Len(t, adminList, 2)

	dup := domain.City{ID: uuid.New(), Name: "Brisbane", IsActive: true, CreatedAt: now, UpdatedAt: now}
	require.ErrorIs(t, s.Cities().CreateCity(ctx, dup), store.ErrAlreadyExists)
}

func TestStore_Ping(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Ping(context.Background()))
}
