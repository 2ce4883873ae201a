package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ronrahal/athar-syria-s-hope/internal/adapter/postgres"
	"github.com/ronrahal/athar-syria-s-hope/internal/adapter/postgres/audit"
	"github.com/ronrahal/athar-syria-s-hope/internal/adapter/postgres/casestore"
	"github.com/ronrahal/athar-syria-s-hope/internal/adapter/postgres/preference"
	"github.com/ronrahal/athar-syria-s-hope/internal/adapter/postgres/user"
	jwtauth "github.com/ronrahal/athar-syria-s-hope/internal/auth"
	"github.com/ronrahal/athar-syria-s-hope/internal/config"
	authsvc "github.com/ronrahal/athar-syria-s-hope/internal/service/auth"
	"github.com/ronrahal/athar-syria-s-hope/internal/service/cases"
	"github.com/ronrahal/athar-syria-s-hope/internal/service/locale"
	"github.com/ronrahal/athar-syria-s-hope/internal/transport/middleware"
	"github.com/ronrahal/athar-syria-s-hope/internal/transport/rest"
)

const rateLimiterCleanup = 5 * time.Minute

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, applies migrations when enabled and serves the HTTP API until
// ctx is canceled or the process receives SIGINT or SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("blob_provider", cfg.Blob.Provider),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return err
		}
	}

	blobs, err := newBlobStore(cfg.Blob)
	if err != nil {
		return err
	}

	// Repositories.
	caseRepo := casestore.New(pool)
	userRepo := user.New(pool)
	auditRepo := audit.New(pool)
	prefRepo := preference.New(pool)
	txm := postgres.NewTxManager(pool)

	// Services.
	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, userRepo, jwtManager, cfg.Auth)
	caseService := cases.NewService(logger, caseRepo, auditRepo, txm, blobs.store, cfg.Submission)
	localeService := locale.NewService(logger, prefRepo)
	localeService.OnChange(locale.LogListener(logger))

	limiter := middleware.NewRateLimiter(rateLimiterCleanup)
	defer limiter.Stop()

	handler := newRouter(routerDeps{
		cfg:       cfg,
		logger:    logger,
		limiter:   limiter,
		validator: authService,
		prefs:     localeService,
		uploads:   blobs.files,
		health: rest.NewHealthHandler(map[string]rest.Pinger{
			"database": pool,
			"storage":  blobs.store,
		}, BuildVersion()),
		cases:       rest.NewCasesHandler(caseService, cfg.Submission.MaxPhotoBytes, logger),
		admin:       rest.NewAdminHandler(caseService, logger),
		auth:        rest.NewAuthHandler(authService, logger),
		preferences: rest.NewPreferencesHandler(localeService, logger),
	})

	srv := newHTTPServer(cfg.Server, handler)
	if err := serve(ctx, srv, cfg.Server.ShutdownTimeout, logger); err != nil {
		return fmt.Errorf("app: %w", err)
	}

	logger.Info("application stopped")
	return nil
}
