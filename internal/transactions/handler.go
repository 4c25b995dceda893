package transactions

import (
	"net/http"
	"strconv"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/easybank/easybank-backend/internal/authz"
	"github.com/easybank/easybank-backend/internal/platform/httpx"
	"github.com/easybank/easybank-backend/internal/shared"
)

// Handler manages transaction and balance endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
	authz   authz.Middleware
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service, authz authz.Middleware) *Handler {
	return &Handler{logger: logger, service: service, authz: authz}
}

// MountRoutes registers transaction routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.authz.RequireAny(authz.TransactionRead))
		r.Get("/", h.listTransactions)
	})
}

// MountBalanceRoutes registers the balance summary route.
func (h *Handler) MountBalanceRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.authz.RequireAny(authz.AccountRead))
		r.Get("/", h.balance)
	})
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	auth := shared.AuthFromContext(r.Context())
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("perPage"))

	result, err := h.service.ListForUser(r.Context(), auth.UserID, page, perPage)
	if err != nil {
		h.logger.Error("list transactions", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request) {
	auth := shared.AuthFromContext(r.Context())
	summary, err := h.service.SummaryForUser(r.Context(), auth.UserID)
	if err != nil {
		h.logger.Error("balance summary", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}
