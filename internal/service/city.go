package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/wanderlabs/citypass/internal/domain"
	"github.com/wanderlabs/citypass/internal/store"
)

var ErrCityExists = errors.New("city already exists")

// CityService owns the city listing resource.
type CityService struct {
	Store store.Store
}

// ListActiveCities returns the cities shown on the public endpoint.
func (s *CityService) ListActiveCities(ctx context.Context) ([]domain.City, error) {
	return s.Store.Cities().ListActiveCities(ctx)
}

// ListCities returns every city including inactive ones.
func (s *CityService) ListCities(ctx context.Context) ([]domain.City, error) {
	return s.Store.Cities().ListCities(ctx)
}

// CreateCity inserts a new active city.
func (s *CityService) CreateCity(ctx context.Context, name string) (domain.City, error) {
	now := time.Now().UTC()
	city := domain.City{
		ID:        uuid.New(),
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Store.Cities().CreateCity(ctx, city); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.City{}, ErrCityExists
		}
		return domain.City{}, err
	}

	return city, nil
}
