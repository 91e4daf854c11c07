package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/inkletter/inkletter/internal/handler/dto"
	"github.com/inkletter/inkletter/internal/middleware"
	"github.com/inkletter/inkletter/internal/model"
	"github.com/inkletter/inkletter/internal/service"
)

// NewsletterHandler handles HTTP requests for newsletter publishing.
type NewsletterHandler struct {
	svc    *service.NewsletterService
	logger *slog.Logger
}

// NewNewsletterHandler creates a new NewsletterHandler.
func NewNewsletterHandler(svc *service.NewsletterService, logger *slog.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		svc:    svc,
		logger: logger,
	}
}

// Publish handles POST /newsletters.
// The caller is authenticated by the basic auth middleware upstream.
func (h *NewsletterHandler) Publish(w http.ResponseWriter, r *http.Request) {
	var req dto.PublishNewsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	input := service.PublishInput{
		Content: model.NewsletterContent{
			Title:    req.Title,
			TextBody: req.Content.Text,
			HTMLBody: req.Content.HTML,
		},
		PublishedBy: middleware.GetPublisher(r.Context()),
	}

	report, err := h.svc.Publish(r.Context(), input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("newsletter_published",
		"issue_id", report.IssueID,
		"sent", report.Sent,
		"failed", report.Failed,
		"published_by", input.PublishedBy,
	)

	writeJSON(w, http.StatusOK, dto.PublishNewsletterResponse{
		IssueID: report.IssueID,
		Sent:    report.Sent,
		Failed:  report.Failed,
	})
}

// handleServiceError maps service errors to HTTP responses.
func (h *NewsletterHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingTitle):
		h.writeError(w, http.StatusBadRequest, "MISSING_TITLE", "Newsletter title is required")
	case errors.Is(err, service.ErrMissingContent):
		h.writeError(w, http.StatusBadRequest, "MISSING_CONTENT", "Newsletter content requires both text and html bodies")
	default:
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// writeError writes an error response.
func (h *NewsletterHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
