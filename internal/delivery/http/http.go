package http

import (
	"context"

	"barbellfx-relay/config"
	"barbellfx-relay/internal/service"
	"barbellfx-relay/pkg/logger"
	"barbellfx-relay/pkg/middleware"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

const (
	serviceName    = "BarbellFX Signal API"
	serviceVersion = "1.0.0"
)

type HttpAPIHandler struct {
	cfg       *config.Config
	log       *logger.Logger
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
}

func NewHttpAPIHandler(ctx context.Context, cfg *config.Config, log *logger.Logger, echo *echo.Echo, validator *goValidator.Validate, service *service.Service) *HttpAPIHandler {
	return &HttpAPIHandler{
		cfg:       cfg,
		log:       log,
		echo:      echo,
		validator: validator,
		service:   service,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	h.echo.HideBanner = true
	h.echo.Use(echoMiddleware.Recover())
	h.echo.Use(middleware.NewRequestLoggerMiddleware(h.log))
	h.echo.Use(middleware.NewCORSMiddleware())
	h.echo.Use(middleware.NewRateLimiterMiddleware(h.cfg.API.RateLimit, h.cfg.API.RateBurst))

	h.SetupInfo(h.echo)
	h.SetupSignal(h.echo)
}
