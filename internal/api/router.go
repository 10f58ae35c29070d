package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/99minutos/geopoint/internal/api/handler"
	"github.com/99minutos/geopoint/internal/api/middleware"
	"github.com/99minutos/geopoint/internal/core/domain"
	"github.com/99minutos/geopoint/internal/core/ports"

	_ "github.com/99minutos/geopoint/docs"
)

// Deps are the services and probes the HTTP layer is built on.
type Deps struct {
	Records    ports.RecordService
	Reports    ports.ReportService
	Location   ports.LocationService
	Dispatcher handler.ReportDispatcher
	Checks     []handler.DependencyCheck
	JWTSecret  string
	Log        zerolog.Logger
	// Registry receives the HTTP metrics. Nil means the default Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: registerer,
	}))

	auth := middleware.Auth(d.JWTSecret)

	// --- Ops (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Checks...)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1")

	// --- Coordinates ---
	geoHandler := handler.NewGeoHandler()
	v1.POST("/geopoints/validate", geoHandler.Validate)
	v1.POST("/geopoints/distance", geoHandler.Distance)

	// --- Location ---
	locationHandler := handler.NewLocationHandler(d.Location, d.Reports)
	v1.GET("/location/current", locationHandler.Current)
	v1.GET("/devices/:id/location", locationHandler.DeviceLocation)

	// --- Records ---
	recordHandler := handler.NewRecordHandler(d.Records, d.Location)
	v1.POST("/records", recordHandler.Create, auth)
	v1.GET("/records/:id", recordHandler.Get)
	v1.PUT("/records/:id/location", recordHandler.Relocate, auth)
	v1.GET("/records/:id/distance/:other", recordHandler.Distance)

	// --- Reports ---
	reportHandler := handler.NewReportHandler(d.Dispatcher)
	reports := v1.Group("/reports", auth, middleware.RBAC(domain.RoleDevice, domain.RoleAdmin))
	reports.POST("", reportHandler.Receive)
	reports.POST("/batch", reportHandler.ReceiveBatch)

	return e
}

// requestLogger emits one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
