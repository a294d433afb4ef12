package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/wanderlabs/citypass/internal/domain"
)

// UserRead is the sanitized user shape returned by the API. The password
// hash never appears in any response.
type UserRead struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	IsVerified bool      `json:"is_verified"`
}

func newUserRead(u domain.User) UserRead {
	return UserRead{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		IsVerified: u.IsVerified,
	}
}

// LoginResponse carries the access token in the body; the refresh token
// travels only in the refresh_token cookie.
type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	User        UserRead `json:"user"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CityPublic is the shape served to unauthenticated listing calls.
type CityPublic struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func newCityPublic(c domain.City) CityPublic {
	return CityPublic{ID: c.ID, Name: c.Name}
}

// CityAdmin exposes the moderation fields on top of the public shape.
type CityAdmin struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newCityAdmin(c domain.City) CityAdmin {
	return CityAdmin{
		ID:        c.ID,
		Name:      c.Name,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type CityCreateRequest struct {
	Name string `json:"name"`
}
