package http

import (
	"net/http"

	"github.com/dropDatabas3/userfed/internal/observability/logger"
)

type validateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /v1/credentials/validate
// Siempre 200 con {"valid": bool} salvo fallo de infraestructura: un no-match
// no es un error HTTP.
func (h *Handler) ValidateCredentials(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if !ReadJSON(w, r, &req) {
		return
	}
	if req.Username == "" {
		WriteError(w, http.StatusBadRequest, "invalid_request", "username es requerido")
		return
	}

	valid, err := h.repo.ValidateCredentials(r.Context(), req.Username, req.Password)
	if err != nil {
		logger.From(r.Context()).Error("credential validation failed",
			logger.Username(req.Username),
			logger.Err(err),
		)
		writeRepositoryError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"valid": valid})
}

// PUT /v1/credentials
// La rotación de credenciales no es función del puente: siempre 501.
func (h *Handler) UpdateCredentials(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if !ReadJSON(w, r, &req) {
		return
	}
	err := h.repo.UpdateCredentials(r.Context(), req.Username, req.Password)
	writeRepositoryError(w, err)
}
