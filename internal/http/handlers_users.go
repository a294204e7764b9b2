package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/userfed/internal/domain/repository"
	"github.com/dropDatabas3/userfed/internal/observability/logger"
)

// Pinger verifica la conectividad con la base legada (para /readyz).
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler expone la fachada de federación sobre HTTP.
type Handler struct {
	repo repository.Users
	ping Pinger
}

func NewHandler(repo repository.Users, ping Pinger) *Handler {
	return &Handler{repo: repo, ping: ping}
}

// GET /readyz
func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		if err := h.ping.Ping(r.Context()); err != nil {
			WriteError(w, http.StatusServiceUnavailable, "unavailable", "legacy database unreachable")
			return
		}
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"ready": true})
}

// GET /v1/users?search=&offset=&limit=
// Sin limit lista sin paginar; con limit arma la ventana [offset, offset+limit).
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := strings.TrimSpace(q.Get("search"))

	var page *repository.Pageable
	if q.Get("limit") != "" {
		limit, err := strconv.Atoi(q.Get("limit"))
		if err != nil || limit < 0 {
			WriteError(w, http.StatusBadRequest, "invalid_request", "limit debe ser un entero no negativo")
			return
		}
		offset := 0
		if q.Get("offset") != "" {
			offset, err = strconv.Atoi(q.Get("offset"))
			if err != nil || offset < 0 {
				WriteError(w, http.StatusBadRequest, "invalid_request", "offset debe ser un entero no negativo")
				return
			}
		}
		page = &repository.Pageable{Offset: offset, Limit: limit}
	}

	var (
		users []repository.Record
		err   error
	)
	if page == nil && search == "" {
		users, err = h.repo.GetAllUsers(r.Context())
	} else {
		users, err = h.repo.FindUsers(r.Context(), search, page)
	}
	if err != nil {
		logger.From(r.Context()).Error("list users failed", logger.Err(err))
		writeRepositoryError(w, err)
		return
	}
	if users == nil {
		users = []repository.Record{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"users": users, "count": len(users)})
}

// GET /v1/users/count?search=
func (h *Handler) CountUsers(w http.ResponseWriter, r *http.Request) {
	count, err := h.repo.GetUsersCount(r.Context(), strings.TrimSpace(r.URL.Query().Get("search")))
	if err != nil {
		logger.From(r.Context()).Error("count users failed", logger.Err(err))
		writeRepositoryError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]int{"count": count})
}

// GET /v1/users/{id}
func (h *Handler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "id debe ser numérico")
		return
	}
	h.writeUser(w, r, func(ctx context.Context) (repository.Record, error) {
		return h.repo.FindUserByID(ctx, id)
	})
}

// GET /v1/users/by-username/{username}
func (h *Handler) GetUserByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	h.writeUser(w, r, func(ctx context.Context) (repository.Record, error) {
		return h.repo.FindUserByUsername(ctx, username)
	})
}

// GET /v1/users/by-email/{email}
func (h *Handler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	h.writeUser(w, r, func(ctx context.Context) (repository.Record, error) {
		return h.repo.FindUserByEmail(ctx, email)
	})
}

func (h *Handler) writeUser(w http.ResponseWriter, r *http.Request, find func(ctx context.Context) (repository.Record, error)) {
	user, err := find(r.Context())
	if err != nil {
		logger.From(r.Context()).Error("find user failed", logger.Err(err))
		writeRepositoryError(w, err)
		return
	}
	if user == nil {
		WriteError(w, http.StatusNotFound, "not_found", "user not found")
		return
	}
	WriteJSON(w, http.StatusOK, user)
}

// GET /v1/capabilities
func (h *Handler) Capabilities(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]bool{"remove_user": h.repo.RemoveUser()})
}
