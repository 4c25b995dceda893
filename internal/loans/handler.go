package loans

import (
	"net/http"
	"strconv"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/easybank/easybank-backend/internal/authz"
	"github.com/easybank/easybank-backend/internal/platform/httpx"
	"github.com/easybank/easybank-backend/internal/shared"
)

// Handler manages loan endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
	authz   authz.Middleware
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service, authz authz.Middleware) *Handler {
	return &Handler{logger: logger, service: service, authz: authz}
}

// MountRoutes registers loan routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.authz.RequireAny(authz.LoanRead))
		r.Get("/", h.listLoans)
	})
	r.Group(func(r chi.Router) {
		r.Use(h.authz.RequireAny(authz.LoanApprove))
		r.Post("/{loanNumber}/approve", h.approveLoan)
	})
}

func (h *Handler) listLoans(w http.ResponseWriter, r *http.Request) {
	auth := shared.AuthFromContext(r.Context())
	loans, err := h.service.ListForUser(r.Context(), auth.UserID)
	if err != nil {
		h.logger.Error("list loans", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if loans == nil {
		loans = []Loan{}
	}
	httpx.JSON(w, http.StatusOK, loans)
}

func (h *Handler) approveLoan(w http.ResponseWriter, r *http.Request) {
	loanNumber, err := strconv.ParseInt(chi.URLParam(r, "loanNumber"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid loan number")
		return
	}
	if err := h.service.Approve(r.Context(), loanNumber); err != nil {
		h.logger.Error("approve loan", slog.Any("error", err), slog.Int64("loan_number", loanNumber))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "approved"})
}
