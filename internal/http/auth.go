package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/wanderlabs/citypass/internal/service"
	"github.com/wanderlabs/citypass/pkg/httpx"
	"github.com/wanderlabs/citypass/pkg/jwtx"
	"github.com/wanderlabs/citypass/pkg/slogx"
)

// refreshCookieName is where the refresh token lives on the client.
const refreshCookieName = "refresh_token"

// AuthHandler serves registration, login and token refresh.
type AuthHandler struct {
	Users  *service.UserService
	Signer *jwtx.Signer

	// CookieSecure is false only in dev so the cookie works over plain
	// http://localhost.
	CookieSecure bool
}

// HandleRegister serves POST /api/auth/register.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	user, err := h.Users.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			httpx.WriteError(w, http.StatusBadRequest, "User already exists")
			return
		}
		log.Error("register failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newUserRead(user))
}

// HandleLogin serves POST /api/auth/login. On success the access token is
// returned in the body and the refresh token is set as an http-only cookie.
//
// Unknown email (400) and wrong password (401) stay distinguishable, matching
// the long-standing API behaviour.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Users.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteError(w, http.StatusBadRequest, "user does not exist")
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid password")
		default:
			log.Error("login failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	h.issueTokens(w, user.ID.String(), func(resp *LoginResponse) {
		resp.User = newUserRead(user)
	})
}

// HandleRefresh serves POST /api/auth/refresh. It exchanges a valid refresh
// cookie for a fresh access token and rotates the cookie.
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	cookie, err := r.Cookie(refreshCookieName)
	if err != nil {
		httpx.WriteError(w, http.StatusUnauthorized, "missing refresh token")
		return
	}

	claims, err := h.Signer.Verify(cookie.Value)
	if err != nil {
		switch {
		case errors.Is(err, jwtx.ErrExpired):
			httpx.WriteError(w, http.StatusUnauthorized, "refresh token expired")
		default:
			httpx.WriteError(w, http.StatusUnauthorized, "invalid refresh token")
		}
		return
	}
	if !claims.IsRefresh() {
		httpx.WriteError(w, http.StatusUnauthorized, "not a refresh token")
		return
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	user, err := h.Users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httpx.WriteError(w, http.StatusUnauthorized, "invalid refresh token")
			return
		}
		log.Error("refresh failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.issueTokens(w, user.ID.String(), func(resp *LoginResponse) {
		resp.User = newUserRead(user)
	})
}

func (h *AuthHandler) issueTokens(w http.ResponseWriter, subject string, fill func(*LoginResponse)) {
	accessToken, err := h.Signer.CreateAccessToken(subject)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	refreshToken, err := h.Signer.CreateRefreshToken(subject)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   int(h.Signer.RefreshTTL() / time.Second),
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	resp := LoginResponse{AccessToken: accessToken}
	fill(&resp)

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, resp)
}
