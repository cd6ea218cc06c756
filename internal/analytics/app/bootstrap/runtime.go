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

	"github.com/go-chi/chi/v5"

	"github.com/ramordeeple/patient-management/internal/analytics/adapters/cache"
	eventadapter "github.com/ramordeeple/patient-management/internal/analytics/adapters/events"
	"github.com/ramordeeple/patient-management/internal/analytics/application"
	"github.com/ramordeeple/patient-management/internal/analytics/ports"
)

type Runtime struct {
	cfg        Config
	logger     *slog.Logger
	httpServer *http.Server
	worker     *eventadapter.ConsumerWorker
	cleanupFn  func(context.Context)
}

func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).With("service", cfg.ServiceID)
	slog.SetDefault(logger)

	// The sink is optional: without Redis events are decoded and logged but
	// not stored.
	var sink ports.AnalyticsSink
	cleanupRedis := func() {}
	if cfg.RedisURL != "" {
		redisClient, redisErr := cache.Connect(ctx, cfg.RedisURL)
		if redisErr != nil {
			logger.WarnContext(ctx, "redis unavailable, analytics sink disabled", "error", redisErr)
		} else {
			sink = cache.NewRedisSink(redisClient)
			cleanupRedis = func() { _ = redisClient.Close() }
		}
	}

	consumer, err := eventadapter.NewKafkaConsumer(cfg.KafkaBrokers, cfg.KafkaConsumerGroup, cfg.KafkaTopicPatient)
	if err != nil {
		cleanupRedis()
		return nil, err
	}

	service := application.NewService(application.Config{ServiceName: cfg.ServiceID}, sink)
	worker := eventadapter.NewConsumerWorker(logger, consumer, service, cfg.ConsumerPollInterval)

	router := chi.NewRouter()
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Runtime{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
		worker:     worker,
		cleanupFn: func(context.Context) {
			_ = consumer.Close()
			cleanupRedis()
		},
	}, nil
}

func (r *Runtime) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	errCh := make(chan error, 2)

	go func() {
		if err := r.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go func() {
		if err := r.worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()
	r.logger.InfoContext(ctx, "analytics service consuming",
		"topic", r.cfg.KafkaTopicPatient,
		"group", r.cfg.KafkaConsumerGroup,
	)

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
