package authhandler

import (
	"errors"
	"log/slog"
	"net/http"

	"paie/internal/auth"
	"paie/internal/transport/http/api"
	"paie/internal/transport/http/middleware"
	"paie/internal/transport/http/shared"
)

type Handler struct {
	Auth *auth.Authenticator
}

func NewHandler(authenticator *auth.Authenticator) *Handler {
	return &Handler{Auth: authenticator}
}

type loginRequest struct {
	Password string `json:"password"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload loginRequest
	if !shared.DecodeJSON(w, r, &payload, requestID) {
		return
	}
	v := shared.NewValidator()
	v.Required("password", payload.Password, "is required")
	if v.Reject(w, requestID) {
		return
	}

	token, err := h.Auth.Login(payload.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			slog.Warn("operator login rejected", "requestId", requestID)
			api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", requestID)
			return
		}
		slog.Error("token issue failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue token", requestID)
		return
	}
	api.Success(w, token, requestID)
}
