package app

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/easybank/easybank-backend/internal/accounts"
	"github.com/easybank/easybank-backend/internal/cards"
	"github.com/easybank/easybank-backend/internal/contacts"
	"github.com/easybank/easybank-backend/internal/identity"
	"github.com/easybank/easybank-backend/internal/loans"
	"github.com/easybank/easybank-backend/internal/notices"
	"github.com/easybank/easybank-backend/internal/observability"
	"github.com/easybank/easybank-backend/internal/transactions"
	"github.com/easybank/easybank-backend/internal/users"
	"github.com/easybank/easybank-backend/jobs"
	"github.com/easybank/easybank-backend/report"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger              *slog.Logger
	Config              *Config
	Authenticator       *identity.Authenticator
	UsersHandler        *users.Handler
	AccountsHandler     *accounts.Handler
	TransactionsHandler *transactions.Handler
	CardsHandler        *cards.Handler
	LoansHandler        *loans.Handler
	NoticesHandler      *notices.Handler
	ContactsHandler     *contacts.Handler
	ReportHandler       *report.Handler
	JobHandler          *jobs.Handler
	Metrics             *observability.Metrics
}

// NewRouter constructs the chi.Router with EasyBank defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Public endpoints: notices and the contact form require no identity.
	r.Route("/api/notices", params.NoticesHandler.MountRoutes)
	r.Route("/api/contact", params.ContactsHandler.MountRoutes)

	// Everything else runs behind bearer-token authentication, which also
	// provisions the local user and resolves effective permissions.
	r.Group(func(r chi.Router) {
		r.Use(params.Authenticator.Middleware)

		r.Route("/api/me", params.UsersHandler.MountRoutes)
		r.Route("/api/accounts", params.AccountsHandler.MountRoutes)
		r.Route("/api/balance", params.TransactionsHandler.MountBalanceRoutes)
		r.Route("/api/transactions", params.TransactionsHandler.MountRoutes)
		r.Route("/api/cards", params.CardsHandler.MountRoutes)
		r.Route("/api/loans", params.LoansHandler.MountRoutes)
		r.Route("/api/contacts", params.ContactsHandler.MountListRoutes)
		r.Route("/api/reports", params.ReportHandler.MountRoutes)
	})

	if params.JobHandler != nil {
		r.Route("/jobs", params.JobHandler.MountRoutes)
	}
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
