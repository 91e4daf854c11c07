package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/inkletter/inkletter/internal/handler/dto"
	"github.com/inkletter/inkletter/internal/service"
)

// SubscriptionHandler handles HTTP requests for the subscriber lifecycle.
type SubscriptionHandler struct {
	svc    *service.SubscriptionService
	logger *slog.Logger
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(svc *service.SubscriptionService, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		svc:    svc,
		logger: logger,
	}
}

// Subscribe handles POST /subscriptions.
// Accepts a form-encoded body with name and email fields.
func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_FORM", "Request body must be form encoded")
		return
	}

	input := service.SubscribeInput{
		Name:  r.PostForm.Get("name"),
		Email: r.PostForm.Get("email"),
	}

	sub, err := h.svc.Subscribe(r.Context(), input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("subscriber_created",
		"subscriber_id", sub.ID,
		"status", string(sub.Status),
	)

	// Nothing the anonymous caller needs beyond the status code; the
	// subscriber id stays internal.
	w.WriteHeader(http.StatusOK)
}

// Confirm handles GET /subscriptions/confirm.
// Redeems the subscription_token query parameter.
func (h *SubscriptionHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("subscription_token")
	if token == "" {
		h.writeError(w, http.StatusBadRequest, "MISSING_TOKEN", "subscription_token is required")
		return
	}

	if err := h.svc.Confirm(r.Context(), token); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("subscriber_confirmed")

	writeJSON(w, http.StatusOK, map[string]string{"status": "confirmed"})
}

// handleServiceError maps service errors to HTTP responses.
func (h *SubscriptionHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidName):
		h.writeError(w, http.StatusBadRequest, "INVALID_NAME", "Name is missing or invalid")
	case errors.Is(err, service.ErrInvalidEmail):
		h.writeError(w, http.StatusBadRequest, "INVALID_EMAIL", "Email is missing or invalid")
	case errors.Is(err, service.ErrUnknownToken):
		h.writeError(w, http.StatusBadRequest, "UNKNOWN_TOKEN", "There is no subscriber associated with the provided token")
	default:
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// writeError writes an error response.
func (h *SubscriptionHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
