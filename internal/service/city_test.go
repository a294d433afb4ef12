package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wanderlabs/citypass/internal/store/storetest"
)

func TestCityService(t *testing.T) {
	svc := &CityService{Store: storetest.New()}
	ctx := context.Background()

	city, err := svc.CreateCity(ctx, "Brisbane")
	require.NoError(t, err)
	require.True(t, city.IsActive, "new cities start active")

	_, err = svc.CreateCity(ctx, "Brisbane")
	require.ErrorIs(t, err, ErrCityExists)

	active, err := svc.ListActiveCities(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)

	all, err := svc.ListCities(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}
