package report

import (
	"context"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/easybank/easybank-backend/internal/authz"
	"github.com/easybank/easybank-backend/internal/platform/httpx"
	"github.com/easybank/easybank-backend/internal/shared"
	"github.com/easybank/easybank-backend/jobs"
)

// StatementQueuer submits statement generation jobs.
type StatementQueuer interface {
	EnqueueStatement(ctx context.Context, payload jobs.StatementPayload) error
}

// Handler manages report endpoints.
type Handler struct {
	logger *slog.Logger
	queue  StatementQueuer
	authz  authz.Middleware
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, queue StatementQueuer, authz authz.Middleware) *Handler {
	return &Handler{logger: logger, queue: queue, authz: authz}
}

// MountRoutes registers report routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.authz.RequireAny(authz.ReportGenerate))
		r.Post("/statement", h.generateStatement)
	})
}

func (h *Handler) generateStatement(w http.ResponseWriter, r *http.Request) {
	auth := shared.AuthFromContext(r.Context())
	payload := jobs.StatementPayload{UserID: auth.UserID, Email: auth.Email, Name: auth.Name}
	if err := h.queue.EnqueueStatement(r.Context(), payload); err != nil {
		h.logger.Error("enqueue statement", slog.Any("error", err))
		httpx.Problem(w, http.StatusServiceUnavailable, "Service Unavailable", "could not queue statement generation")
		return
	}
	httpx.JSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}
