// Package storetest provides an in-memory store.Store implementation for
// unit tests that don't need a real database.
package storetest

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/wanderlabs/citypass/internal/domain"
	"github.com/wanderlabs/citypass/internal/store"
)

type Store struct {
	mu     sync.Mutex
	users  map[uuid.UUID]domain.User
	cities map[uuid.UUID]domain.City
}

func New() *Store {
	return &Store{
		users:  make(map[uuid.UUID]domain.User),
		cities: make(map[uuid.UUID]domain.City),
	}
}

func (s *Store) Users() store.Users   { return (*usersRepo)(s) }
func (s *Store) Cities() store.Cities { return (*citiesRepo)(s) }

func (s *Store) ApplyMigrations() error       { return nil }
func (s *Store) Close() error                 { return nil }
func (s *Store) Ping(_ context.Context) error { return nil }

type usersRepo Store

func (r *usersRepo) GetUserByID(_ context.Context, id uuid.UUID) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return domain.User{}, store.ErrNotFound
}

func (r *usersRepo) GetUserByEmail(_ context.Context, email string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, store.ErrNotFound
}

func (r *usersRepo) CreateUser(_ context.Context, u domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return store.ErrAlreadyExists
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *usersRepo) ListUsers(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

type citiesRepo Store

func (r *citiesRepo) ListActiveCities(_ context.Context) ([]domain.City, error) {
	return r.list(true)
}

func (r *citiesRepo) ListCities(_ context.Context) ([]domain.City, error) {
	return r.list(false)
}

func (r *citiesRepo) list(activeOnly bool) ([]domain.City, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cities := make([]domain.City, 0, len(r.cities))
	for _, c := range r.cities {
		if activeOnly && !c.IsActive {
			continue
		}
		cities = append(cities, c)
	}
	sort.Slice(cities, func(i, j int) bool { return cities[i].Name < cities[j].Name })
	return cities, nil
}

func (r *citiesRepo) CreateCity(_ context.Context, c domain.City) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.cities {
		if existing.Name == c.Name {
			return store.ErrAlreadyExists
		}
	}
	r.cities[c.ID] = c
	return nil
}
