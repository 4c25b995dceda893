package cards

import (
	"context"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/easybank/easybank-backend/internal/authz"
	"github.com/easybank/easybank-backend/internal/platform/httpx"
	"github.com/easybank/easybank-backend/internal/shared"
)

// Handler manages card endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
	authz   authz.Middleware
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service, authz authz.Middleware) *Handler {
	return &Handler{logger: logger, service: service, authz: authz}
}

// MountRoutes registers card routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.authz.RequireAny(authz.CardRead))
		r.Get("/", h.listCards)
	})
	r.Group(func(r chi.Router) {
		r.Use(h.authz.RequireAny(authz.CardActivate))
		r.Post("/{cardID}/activate", h.activateCard)
	})
	r.Group(func(r chi.Router) {
		r.Use(h.authz.RequireAny(authz.CardBlock))
		r.Post("/{cardID}/block", h.blockCard)
	})
}

func (h *Handler) listCards(w http.ResponseWriter, r *http.Request) {
	auth := shared.AuthFromContext(r.Context())
	cards, err := h.service.ListForUser(r.Context(), auth.UserID)
	if err != nil {
		h.logger.Error("list cards", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if cards == nil {
		cards = []Card{}
	}
	httpx.JSON(w, http.StatusOK, cards)
}

func (h *Handler) activateCard(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, h.service.Activate, "activate card")
}

func (h *Handler) blockCard(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, h.service.Block, "block card")
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request, op func(context.Context, int64) error, action string) {
	cardID, err := strconv.ParseInt(chi.URLParam(r, "cardID"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid card id")
		return
	}
	if err := op(r.Context(), cardID); err != nil {
		h.logger.Error(action, slog.Any("error", err), slog.Int64("card_id", cardID))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
