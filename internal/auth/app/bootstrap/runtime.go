package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ramordeeple/patient-management/internal/auth/adapters/cache"
	httpadapter "github.com/ramordeeple/patient-management/internal/auth/adapters/http"
	"github.com/ramordeeple/patient-management/internal/auth/adapters/postgres"
	"github.com/ramordeeple/patient-management/internal/auth/adapters/security"
	"github.com/ramordeeple/patient-management/internal/auth/application"
	"github.com/ramordeeple/patient-management/internal/auth/ports"
)

type Runtime struct {
	cfg        Config
	logger     *slog.Logger
	httpServer *http.Server
	cleanupFn  func(context.Context)
}

func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).With("service", cfg.ServiceID)
	slog.SetDefault(logger)

	db, err := postgres.Connect(ctx, cfg.DatabaseURL, cfg.MaxDBConns)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := postgres.RunMigrations(ctx, db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	signer, err := security.NewJWTSigner(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	// Lockout tracking is optional; without Redis the service still runs,
	// it just never locks accounts.
	var lockouts ports.LockoutStore
	cleanupRedis := func() {}
	if cfg.RedisURL != "" {
		redisClient, redisErr := cache.Connect(ctx, cfg.RedisURL)
		if redisErr != nil {
			logger.WarnContext(ctx, "redis unavailable, lockout disabled", "error", redisErr)
		} else {
			lockouts = cache.NewRedisLockoutStore(redisClient)
			cleanupRedis = func() { _ = redisClient.Close() }
		}
	}

	repos := postgres.NewRepositories(db)
	service := application.NewService(application.Dependencies{
		Config: application.Config{
			ServiceName:      cfg.ServiceID,
			LockoutThreshold: cfg.LockoutThreshold,
			LockoutWindow:    cfg.LockoutWindow,
		},
		Users:    repos.Users,
		Hasher:   security.NewBcryptHasher(cfg.BcryptCost),
		Signer:   signer,
		Lockouts: lockouts,
	})

	handler := httpadapter.NewHandler(service)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           httpadapter.NewRouter(handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Runtime{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
		cleanupFn: func(context.Context) {
			cleanupRedis()
			_ = sqlDB.Close()
		},
	}, nil
}

func (r *Runtime) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	errCh := make(chan error, 1)

	go func() {
		if err := r.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	r.logger.InfoContext(ctx, "auth service listening", "port", r.cfg.HTTPPort)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		r.logger.ErrorContext(ctx, "runtime failure", "error", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = r.httpServer.Shutdown(shutdownCtx)
	r.cleanupFn(shutdownCtx)
	return nil
}
