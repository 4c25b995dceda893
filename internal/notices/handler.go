package notices

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/easybank/easybank-backend/internal/platform/httpx"
)

// Handler manages the public notices endpoint.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers notice routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.listNotices)
}

func (h *Handler) listNotices(w http.ResponseWriter, r *http.Request) {
	notices, err := h.service.ListActive(r.Context())
	if err != nil {
		h.logger.Error("list notices", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if notices == nil {
		notices = []Notice{}
	}
	httpx.JSON(w, http.StatusOK, notices)
}
