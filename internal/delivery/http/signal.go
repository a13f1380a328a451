package http

import (
	"net/http"

	"barbellfx-relay/internal/dto"
	"barbellfx-relay/pkg/logger"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupSignal(e *echo.Echo) {
	e.GET("/signal", h.getSignal)
	e.POST("/signal", h.postSignal)
}

func (h *HttpAPIHandler) getSignal(c echo.Context) error {
	signal, ok := h.service.SignalService.Latest(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusNotFound, dto.NewNotFoundResponse("no signal yet"))
	}
	return c.JSON(http.StatusOK, signal)
}

func (h *HttpAPIHandler) postSignal(c echo.Context) error {
	ctx := c.Request().Context()

	// Producers that omit Content-Type still send JSON.
	if c.Request().Header.Get(echo.HeaderContentType) == "" {
		c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	req := new(dto.SignalRequest)
	if err := c.Bind(req); err != nil {
		h.log.WarnContext(ctx, "Rejected signal payload", logger.ErrorField(err))
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		h.log.WarnContext(ctx, "Rejected signal payload", logger.ErrorField(err))
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	stored := h.service.SignalService.Submit(ctx, req.ToModel())
	return c.JSON(http.StatusOK, dto.SignalReceivedResponse{
		Status: "received",
		Signal: stored,
	})
}
