package accounts

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/easybank/easybank-backend/internal/authz"
	"github.com/easybank/easybank-backend/internal/platform/httpx"
	"github.com/easybank/easybank-backend/internal/shared"
)

// Handler manages account endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
	authz   authz.Middleware
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service, authz authz.Middleware) *Handler {
	return &Handler{logger: logger, service: service, authz: authz}
}

// MountRoutes registers account routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.authz.RequireAny(authz.AccountRead))
		r.Get("/", h.listAccounts)
	})
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	auth := shared.AuthFromContext(r.Context())
	accounts, err := h.service.ListForUser(r.Context(), auth.UserID)
	if err != nil {
		h.logger.Error("list accounts", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if accounts == nil {
		accounts = []Account{}
	}
	httpx.JSON(w, http.StatusOK, accounts)
}
