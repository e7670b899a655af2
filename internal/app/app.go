// Package app wires configuration, storage, services, and transport into a
// runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/arjunbhatia/healthlog-backend/internal/adapter/llm"
	"github.com/arjunbhatia/healthlog-backend/internal/adapter/postgres"
	bodystatrepo "github.com/arjunbhatia/healthlog-backend/internal/adapter/postgres/bodystat"
	journalrepo "github.com/arjunbhatia/healthlog-backend/internal/adapter/postgres/journal"
	labtestrepo "github.com/arjunbhatia/healthlog-backend/internal/adapter/postgres/labtest"
	mealrepo "github.com/arjunbhatia/healthlog-backend/internal/adapter/postgres/meal"
	medicinerepo "github.com/arjunbhatia/healthlog-backend/internal/adapter/postgres/medicine"
	userrepo "github.com/arjunbhatia/healthlog-backend/internal/adapter/postgres/user"
	jwtauth "github.com/arjunbhatia/healthlog-backend/internal/auth"
	"github.com/arjunbhatia/healthlog-backend/internal/config"
	authsvc "github.com/arjunbhatia/healthlog-backend/internal/service/auth"
	journalsvc "github.com/arjunbhatia/healthlog-backend/internal/service/journal"
	recordssvc "github.com/arjunbhatia/healthlog-backend/internal/service/records"
	"github.com/arjunbhatia/healthlog-backend/internal/transport/middleware"
	"github.com/arjunbhatia/healthlog-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires the services, and serves HTTP until SIGINT/SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	journalRepo := journalrepo.New(pool)
	mealRepo := mealrepo.New(pool)
	medicineRepo := medicinerepo.New(pool)
	bodyStatRepo := bodystatrepo.New(pool)
	labTestRepo := labtestrepo.New(pool)
	userRepo := userrepo.New(pool)

	extractor := llm.NewClient(cfg.AI)
	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, cfg.Auth, userRepo, jwtManager)
	journalService := journalsvc.NewService(
		logger, journalRepo, mealRepo, medicineRepo, bodyStatRepo, labTestRepo, extractor,
	)
	recordsService := recordssvc.NewService(logger, mealRepo, medicineRepo, bodyStatRepo, labTestRepo)

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	handler := rest.NewRouter(
		logger,
		cfg.CORS,
		rest.NewAuthHandler(authService, logger),
		rest.NewJournalHandler(journalService, logger),
		rest.NewRecordsHandler(recordsService, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
		authService,
		limiter,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
