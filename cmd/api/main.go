package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atrika/internal/api"
	"atrika/internal/config"
	"atrika/internal/display"
	"atrika/internal/domain"
	"atrika/internal/events"
	"atrika/internal/export"
	"atrika/internal/flights"
	"atrika/internal/logging"
	"atrika/internal/metrics"
	"atrika/internal/models"
	"atrika/internal/repository"
	"atrika/internal/service"
	"atrika/internal/session"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"
)

func main() {
	exportOnly := flag.Bool("export", false, "write the stored bookings to an xlsx file under exports.path and exit")
	flag.Parse()

	if err := run(*exportOnly); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(exportOnly bool) error {
	cfg, base, closer, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer (func() { _ = closer.Close() })()
	}
	logger := base.With().Str("component", "api-main").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := initBackend(ctx, cfg, &base)
	if err != nil {
		return err
	}
	defer storage.close()

	store := session.NewStore(storage.kv, logging.Component(&base, "session"))

	if exportOnly {
		return exportBookings(ctx, cfg, store, &logger)
	}

	deals, banners, err := loadDeals(cfg, &logger)
	if err != nil {
		return err
	}

	eventBus := events.NewEventBus()
	subscribeEvents(eventBus, logging.Component(&base, "events"))

	var src rand.Source
	if cfg.Generator.Seed != 0 {
		src = rand.NewSource(cfg.Generator.Seed)
	}
	generator := flights.NewGenerator(src, cfg.Generator.Count)
	seats := display.NewAssigner(nil)

	dealService := service.NewDealService(deals, banners, cfg.Deals.BannerInterval, logging.Component(&base, "deals"))
	go dealService.Rotator().Start(ctx)

	httpServer := api.NewHTTPServer(cfg.API, api.Deps{
		Search:   service.NewSearchService(store, generator, eventBus, logging.Component(&base, "search")),
		Bookings: service.NewBookingService(store, seats, eventBus, logging.Component(&base, "bookings")),
		Accounts: service.NewAccountService(store, eventBus, logging.Component(&base, "accounts")),
		Deals:    dealService,
		Ready:    storage.ready,
	}, logging.Component(&base, "http"))

	startMetrics(ctx, cfg, &logger)

	return startServer(ctx, httpServer, &logger)
}

func loadConfigAndLogger() (*config.Config, zerolog.Logger, io.Closer, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("load config: %w", err)
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("init logger: %w", err)
	}

	return cfg, *baseLogger, closer, nil
}

// backend is the KV store behind the session plus its lifecycle hooks.
type backend struct {
	kv    domain.KVStore
	ready func(ctx context.Context) error
	close func()
}

func initBackend(ctx context.Context, cfg *config.Config, base *zerolog.Logger) (*backend, error) {
	logger := logging.Component(base, "store")
	b := &backend{close: func() {}}

	switch cfg.Store.Backend {
	case config.BackendRedis:
		client := repository.NewRedisClient(cfg.Redis)
		policy := repository.RetryPolicy{
			MaxRetries:    cfg.Redis.ConnectRetries,
			InitialDelay:  500 * time.Millisecond,
			MaxDelay:      5 * time.Second,
			BackoffFactor: 2,
		}
		err := repository.Retry(ctx, policy, logger, func(ctx context.Context) error {
			return repository.Ping(ctx, client)
		})
		if err != nil {
			if !cfg.Store.Failover {
				_ = repository.Close(client)
				return nil, fmt.Errorf("redis ping: %w", err)
			}
			logger.Warn().Err(err).Msg("redis unavailable at startup, session falls back to memory")
		}
		b.kv = repository.NewRedisStore(client, cfg.Store.KeyPrefix, cfg.Redis.TTL)
		b.ready = func(ctx context.Context) error { return repository.Ping(ctx, client) }
		b.close = func() { _ = repository.Close(client) }
		logger.Info().Str("addr", cfg.Redis.Address).Msg("redis session backend")

	case config.BackendSQLite:
		db, err := repository.NewSQLiteStore(cfg.Database.Path, cfg.Store.KeyPrefix, logging.Component(base, "sqlite"))
		if err != nil {
			logger.Error().Err(err).Str("db_path", cfg.Database.Path).Msg("init database")
			return nil, err
		}
		b.kv = db
		b.ready = db.PingContext
		b.close = func() { _ = db.Close() }
		logger.Info().Str("db_path", cfg.Database.Path).Msg("sqlite session backend")

		if cfg.Backup.Enabled {
			backupService := repository.NewBackupService(db, cfg.Backup, logging.Component(base, "backup"))
			go backupService.Run(ctx)
		}

	default:
		b.kv = repository.NewMemoryStore()
		logger.Info().Msg("in-memory session backend")
		return b, nil
	}

	if cfg.Store.Failover {
		b.kv = repository.NewFailoverStore(b.kv, repository.NewMemoryStore(), logging.Component(base, "failover"))
		// the memory fallback always answers
		b.ready = nil
	}
	return b, nil
}

type dealsFile struct {
	Deals   []models.Deal   `yaml:"deals"`
	Banners []models.Banner `yaml:"banners"`
}

// loadDeals reads the deals catalog. No path means the built-in catalog.
func loadDeals(cfg *config.Config, logger *zerolog.Logger) ([]models.Deal, []models.Banner, error) {
	dealsPath := os.Getenv("DEALS_PATH")
	if dealsPath == "" {
		dealsPath = cfg.Deals.Path
	}
	if dealsPath == "" {
		return nil, nil, nil
	}

	data, err := os.ReadFile(dealsPath)
	if err != nil {
		logger.Error().Err(err).Str("deals_path", dealsPath).Msg("read deals")
		return nil, nil, err
	}

	var catalog dealsFile
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		logger.Error().Err(err).Str("deals_path", dealsPath).Msg("parse deals")
		return nil, nil, err
	}

	logger.Info().
		Int("deals", len(catalog.Deals)).
		Int("banners", len(catalog.Banners)).
		Str("deals_path", dealsPath).
		Msg("deals catalog loaded")
	return catalog.Deals, catalog.Banners, nil
}

func subscribeEvents(bus *events.EventBus, logger *zerolog.Logger) {
	bus.SubscribeAll(func(ev *events.Event) error {
		logger.Info().
			Str("event", ev.Type).
			RawJSON("payload", ev.Payload).
			Time("created_at", ev.CreatedAt).
			Msg("domain event")
		return nil
	},
		events.EventSearchPerformed,
		events.EventBookingCreated,
		events.EventBookingCancelled,
		events.EventUserLoggedIn,
		events.EventUserLoggedOut,
	)
}

func exportBookings(ctx context.Context, cfg *config.Config, store *session.Store, logger *zerolog.Logger) error {
	bookings := store.Bookings(ctx)
	path, err := export.SaveFile(cfg.Exports.Path, bookings, time.Now())
	if err != nil {
		logger.Error().Err(err).Msg("bookings export failed")
		return err
	}
	logger.Info().Str("file_path", path).Int("bookings", len(bookings)).Msg("bookings exported")
	return nil
}

func startMetrics(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) {
	if !cfg.Monitoring.PrometheusEnabled {
		return
	}

	metrics.Register()
	go startMetricsServer(ctx, cfg.API.HTTP.Host, cfg.Monitoring.PrometheusPort, logger)
}

func startServer(ctx context.Context, httpServer *api.HTTPServer, logger *zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Start()
	}()

	logger.Info().Str("http_addr", httpServer.Addr()).Msg("API server started")

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			logger.Error().Err(err).Msg("http server stopped")
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = httpServer.Shutdown(shutdownCtx)

	logger.Info().Msg("API server stopped")
	return nil
}

func startMetricsServer(ctx context.Context, host string, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", host, port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("metrics server error")
	}
}
