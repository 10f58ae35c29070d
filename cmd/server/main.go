// @title                       GeoPoint API
// @version                     1.0
// @description                 Validated coordinates, great-circle distances, location-tagged records and device location reports.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"github.com/99minutos/geopoint/internal/api"
	"github.com/99minutos/geopoint/internal/api/handler"
	"github.com/99minutos/geopoint/internal/core/domain"
	"github.com/99minutos/geopoint/internal/core/ports"
	"github.com/99minutos/geopoint/internal/core/service"
	"github.com/99minutos/geopoint/internal/infrastructure/config"
	mongodb "github.com/99minutos/geopoint/internal/infrastructure/db/mongo"
	redisdb "github.com/99minutos/geopoint/internal/infrastructure/db/redis"
	"github.com/99minutos/geopoint/internal/infrastructure/geolocation"
	"github.com/99minutos/geopoint/internal/infrastructure/messaging"
	"github.com/99minutos/geopoint/internal/infrastructure/queue"
	"github.com/99minutos/geopoint/pkg/logger"
)

func main() {
	envErr := godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{Pretty: true})
		l.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "geopoint",
	})
	if envErr != nil {
		log.Debug().Msg("no .env file found, using environment variables")
	}
	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty, authenticated routes will reject every token")
	}

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  "geopoint",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connect")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	recordRepo := mongodb.NewRecordRepository(db)
	reportRepo := mongodb.NewReportRepository(db)
	if err := recordRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("records indexes")
	}
	if err := reportRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("location_reports indexes")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect")
	}
	defer rdb.Close()

	checks := []handler.DependencyCheck{
		{Name: "mongodb", Ping: func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }},
		{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
	}

	// --- NATS (optional) ---
	var publisher ports.ReportPublisher
	if cfg.NATS.URL != "" {
		nc, err := messaging.Connect(cfg.NATS.URL, log)
		if err != nil {
			log.Warn().Err(err).Msg("nats unavailable, reports will not be published")
		} else {
			pub := messaging.NewPublisher(nc)
			defer pub.Close()
			publisher = pub
			checks = append(checks, handler.DependencyCheck{Name: "nats", Ping: func(context.Context) error {
				if nc.Status() != nats.CONNECTED {
					return errors.New(nc.Status().String())
				}
				return nil
			}})
		}
	}

	// --- Services ---
	locationSvc := service.NewLocationService(newLocationProvider(cfg.Location, log), log)
	recordSvc := service.NewRecordService(recordRepo, log)
	reportSvc := service.NewReportService(
		redisdb.NewLastLocationStore(rdb, cfg.Redis.LastLocationTTL),
		reportRepo,
		publisher,
		redisdb.NewDedupChecker(rdb),
		log,
	)

	dispatcher := queue.NewDispatcher(cfg.Workers, reportSvc, log)
	dispatcher.Start(context.Background())

	e := api.NewRouter(api.Deps{
		Records:    recordSvc,
		Reports:    reportSvc,
		Location:   locationSvc,
		Dispatcher: dispatcher,
		Checks:     checks,
		JWTSecret:  cfg.JWTSecret,
		Log:        log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	if err := dispatcher.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("report queue not fully drained")
	}

	log.Info().Msg("server stopped")
}

func newLocationProvider(cfg config.LocationConfig, log zerolog.Logger) ports.LocationProvider {
	if cfg.Provider == config.ProviderStatic {
		var pos *domain.Position
		if cfg.StaticLat != nil && cfg.StaticLng != nil {
			pos = &domain.Position{Latitude: *cfg.StaticLat, Longitude: *cfg.StaticLng}
		}
		log.Info().Bool("configured", pos != nil).Msg("using static location provider")
		return geolocation.NewStaticProvider(pos)
	}
	log.Info().Str("endpoint", cfg.IPAPIURL).Msg("using ip geolocation provider")
	return geolocation.NewIPAPIProvider(cfg.IPAPIURL, cfg.HTTPTimeout)
}
