package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/wanderlabs/citypass/internal/domain"
)

type citiesRepo struct {
	db *sqlx.DB
}

func (r *citiesRepo) ListActiveCities(ctx context.Context) ([]domain.City, error) {
	return r.list(ctx,
		`SELECT id, name, is_active, created_at, updated_at
		 FROM cities WHERE is_active = 1 ORDER BY created_at, id`)
}

func (r *citiesRepo) ListCities(ctx context.Context) ([]domain.City, error) {
	return r.list(ctx,
		`SELECT id, name, is_active, created_at, updated_at
		 FROM cities ORDER BY created_at, id`)
}

func (r *citiesRepo) list(ctx context.Context, query string) ([]domain.City, error) {
	var rows []cityRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	cities := make([]domain.City, 0, len(rows))
	for _, row := range rows {
		c, err := mapCity(row)
		if err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, nil
}

func (r *citiesRepo) CreateCity(ctx context.Context, c domain.City) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cities (id, name, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		c.ID.String(), c.Name, c.IsActive, c.CreatedAt, c.UpdatedAt)
	return mapConflict(err)
}
