// @title Events Manager API
// @version 1.0
// @description Developers, events and event invitations.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventsmanager/config"
	_ "eventsmanager/docs"
	"eventsmanager/internal/adapters/email"
	"eventsmanager/internal/adapters/geocache"
	"eventsmanager/internal/adapters/metrics"
	"eventsmanager/internal/adapters/weatherstack"
	httpdelivery "eventsmanager/internal/delivery/http"
	"eventsmanager/internal/delivery/http/controllers"
	"eventsmanager/internal/delivery/http/middleware"
	"eventsmanager/internal/domain"
	"eventsmanager/internal/repository/memory"
	"eventsmanager/internal/repository/postgres"
	"eventsmanager/internal/services"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 15 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	var m *metrics.Manager
	if cfg.MetricsEnabled {
		m = metrics.NewManager()
	}

	geocoder, closeGeocoder, err := buildGeocoder(cfg, m, logger)
	if err != nil {
		return err
	}
	defer closeGeocoder()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	var recorder domain.InviteRecorder
	if m != nil {
		recorder = m
	}
	developerService := services.NewDeveloperService(store, logger)
	eventService := services.NewEventService(store, geocoder, logger)
	inviteService := services.NewInviteService(store, emailService, recorder, logger)

	var (
		metricsHandler http.Handler
		httpRecorder   middleware.HTTPRecorder
	)
	if m != nil {
		metricsHandler = m.Handler()
		httpRecorder = m
	}
	router := httpdelivery.NewRouter(httpdelivery.Controllers{
		Developers:  controllers.NewDeveloperController(logger, developerService, inviteService),
		Events:      controllers.NewEventController(logger, eventService),
		Invitations: controllers.NewInvitationController(logger, inviteService),
	}, metricsHandler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httpdelivery.Middleware(router, logger, httpRecorder, cfg.CORSAllowedOrigins),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server", "addr", srv.Addr, "store", cfg.StoreDriver, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// openStore returns the configured record store and its cleanup function.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.Store, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warn("using in-memory store; data is lost on restart")
		return memory.NewStore(), func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	logger.Info("connected to database")
	return postgres.NewStore(db), func() { _ = db.Close() }, nil
}

// buildGeocoder layers the Weatherstack client with metrics and, when Redis
// is configured, the geocode cache.
func buildGeocoder(cfg *config.Config, m *metrics.Manager, logger *slog.Logger) (domain.Geocoder, func(), error) {
	if cfg.Geocoder.AccessKey == "" {
		logger.Warn("WEATHERSTACK_ACCESS_KEY is not set; in-person events will fail to geocode")
	}
	var geocoder domain.Geocoder = weatherstack.NewClient(
		&http.Client{Timeout: cfg.Geocoder.Timeout},
		cfg.Geocoder.BaseURL,
		cfg.Geocoder.AccessKey,
	)
	if m != nil {
		geocoder = metrics.InstrumentGeocoder(geocoder, m)
	}
	if cfg.Cache.RedisURL == "" {
		return geocoder, func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.Cache.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	logger.Info("geocode cache enabled", "addr", opts.Addr, "ttl", cfg.Cache.TTL)
	return geocache.New(geocoder, client, cfg.Cache.TTL, logger), func() { _ = client.Close() }, nil
}
