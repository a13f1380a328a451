package http

import (
	"embed"
	"net/http"

	"barbellfx-relay/internal/dto"
	"barbellfx-relay/internal/model"

	"github.com/labstack/echo/v4"
)

//go:embed pages/*.html
var pages embed.FS

var endpoints = map[string]string{
	"GET /signal":  "Get current signal",
	"POST /signal": "Set new signal",
}

func (h *HttpAPIHandler) SetupInfo(e *echo.Echo) {
	e.GET("/", h.status)
	e.GET("/privacy", h.page("pages/privacy.html"))
	e.GET("/terms", h.page("pages/terms.html"))
}

func (h *HttpAPIHandler) status(c echo.Context) error {
	var current *model.Signal
	if signal, ok := h.service.SignalService.Latest(c.Request().Context()); ok {
		current = &signal
	}
	return c.JSON(http.StatusOK, dto.StatusResponse{
		Status:        serviceName + " running",
		Version:       serviceVersion,
		Endpoints:     endpoints,
		CurrentSignal: current,
	})
}

func (h *HttpAPIHandler) page(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := pages.ReadFile(name)
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return c.HTMLBlob(http.StatusOK, body)
	}
}
