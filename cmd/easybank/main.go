package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/easybank/easybank-backend/internal/accounts"
	"github.com/easybank/easybank-backend/internal/app"
	"github.com/easybank/easybank-backend/internal/authz"
	"github.com/easybank/easybank-backend/internal/cards"
	"github.com/easybank/easybank-backend/internal/contacts"
	"github.com/easybank/easybank-backend/internal/identity"
	"github.com/easybank/easybank-backend/internal/loans"
	"github.com/easybank/easybank-backend/internal/notices"
	"github.com/easybank/easybank-backend/internal/observability"
	"github.com/easybank/easybank-backend/internal/platform/cache"
	"github.com/easybank/easybank-backend/internal/platform/db"
	"github.com/easybank/easybank-backend/internal/transactions"
	"github.com/easybank/easybank-backend/internal/users"
	"github.com/easybank/easybank-backend/jobs"
	"github.com/easybank/easybank-backend/report"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	metrics := observability.NewMetrics()

	catalog := authz.NewCatalog()
	overrideRepo := authz.NewRepository(pool)
	resolver := authz.NewResolver(catalog, overrideRepo)
	authzMiddleware := authz.Middleware{Logger: logger}

	userRepo := users.NewRepository(pool)
	provisioner := users.NewProvisioner(userRepo, logger, metrics)

	authenticator := &identity.Authenticator{
		Verifier:    identity.NewHMACVerifier(cfg.JWTHMACSecret, cfg.JWTIssuer),
		Converter:   identity.RoleConverter{Logger: logger},
		Provisioner: provisioner,
		Resolver:    resolver,
		Logger:      logger,
	}

	queueClient, err := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	if err != nil {
		logger.Error("init queue client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := queueClient.Close(); err != nil {
			logger.Warn("queue client close", slog.Any("error", err))
		}
	}()

	accountsService := accounts.NewService(accounts.NewRepository(pool))
	transactionsService := transactions.NewService(transactions.NewRepository(pool))
	cardsService := cards.NewService(cards.NewRepository(pool))
	loansService := loans.NewService(loans.NewRepository(pool))
	noticesService := notices.NewService(notices.NewRepository(pool), notices.NewCache(redisClient, cfg.NoticeCacheTTL))
	contactsService := contacts.NewService(contacts.NewRepository(pool), queueClient, logger)

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()

	router := app.NewRouter(app.RouterParams{
		Logger:              logger,
		Config:              cfg,
		Authenticator:       authenticator,
		UsersHandler:        users.NewHandler(logger),
		AccountsHandler:     accounts.NewHandler(logger, accountsService, authzMiddleware),
		TransactionsHandler: transactions.NewHandler(logger, transactionsService, authzMiddleware),
		CardsHandler:        cards.NewHandler(logger, cardsService, authzMiddleware),
		LoansHandler:        loans.NewHandler(logger, loansService, authzMiddleware),
		NoticesHandler:      notices.NewHandler(logger, noticesService),
		ContactsHandler:     contacts.NewHandler(logger, contactsService, authzMiddleware),
		ReportHandler:       report.NewHandler(logger, queueClient, authzMiddleware),
		JobHandler:          jobs.NewHandler(inspector, logger),
		Metrics:             metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
