package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/wanderlabs/citypass/internal/service"
	"github.com/wanderlabs/citypass/pkg/httpx"
	"github.com/wanderlabs/citypass/pkg/slogx"
)

// UsersHandler serves the read-only user listing endpoints.
type UsersHandler struct {
	Users *service.UserService
}

// HandleList serves GET /api/users.
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.Users.ListUsers(ctx)
	if err != nil {
		log.Error("list users failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]UserRead, 0, len(users))
	for _, u := range users {
		out = append(out, newUserRead(u))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet serves GET /api/users/{id}.
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "user not found")
		return
	}

	user, err := h.Users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		log.Error("get user failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newUserRead(user))
}
