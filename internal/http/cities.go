package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wanderlabs/citypass/internal/service"
	"github.com/wanderlabs/citypass/pkg/httpx"
	"github.com/wanderlabs/citypass/pkg/slogx"
)

// CitiesHandler serves the public city listing.
type CitiesHandler struct {
	Cities *service.CityService
}

// HandleList serves GET /api/cities with active cities only.
func (h *CitiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	cities, err := h.Cities.ListActiveCities(ctx)
	if err != nil {
		log.Error("list cities failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]CityPublic, 0, len(cities))
	for _, c := range cities {
		out = append(out, newCityPublic(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// AdminCitiesHandler serves the authenticated moderation endpoints.
type AdminCitiesHandler struct {
	Cities *service.CityService
}

// HandleList serves GET /api/admin/cities including inactive entries.
func (h *AdminCitiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	cities, err := h.Cities.ListCities(ctx)
	if err != nil {
		log.Error("list cities failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]CityAdmin, 0, len(cities))
	for _, c := range cities {
		out = append(out, newCityAdmin(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate serves POST /api/admin/cities.
func (h *AdminCitiesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req CityCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		httpx.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	city, err := h.Cities.CreateCity(ctx, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrCityExists) {
			httpx.WriteError(w, http.StatusConflict, "city already exists")
			return
		}
		log.Error("create city failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, newCityAdmin(city))
}
