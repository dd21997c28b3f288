package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"wholesale/internal/adapters/in/http/api"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig carries the optional parts of the router.
type RouterConfig struct {
	// Redis enables Idempotency-Key support for POST requests when set.
	Redis          redis.Cmdable
	IdempotencyTTL time.Duration

	// HealthCheck is called by /health. Nil means always healthy.
	HealthCheck func(ctx context.Context) error

	LogLevel log.Lvl
}

// NewRouter builds the echo instance: middleware chain, contract validation,
// API routes, /health and /swagger.
func NewRouter(server api.ServerInterface, cfg RouterConfig, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = api.RegisterSwaggerDoc(doc); err != nil {
		return nil, err
	}
	validate, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	if cfg.LogLevel != 0 {
		e.Logger.SetLevel(cfg.LogLevel)
	}
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(RequestLogger(logger))
	e.Use(validate)
	if cfg.Redis != nil {
		e.Use(Idempotency(cfg.Redis, cfg.IdempotencyTTL, logger))
	}

	e.GET("/health", func(ctx echo.Context) error {
		if cfg.HealthCheck != nil {
			if err := cfg.HealthCheck(ctx.Request().Context()); err != nil {
				return ctx.String(http.StatusServiceUnavailable, "Unhealthy")
			}
		}
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api.RegisterHandlers(e, server)
	return e, nil
}
