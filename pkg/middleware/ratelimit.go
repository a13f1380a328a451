package middleware

import (
	"net/http"
	"time"

	"barbellfx-relay/internal/dto"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewRateLimiterMiddleware limits each client IP to perSecond requests
// with the given burst. A non-positive perSecond disables limiting.
func NewRateLimiterMiddleware(perSecond float64, burst int) echo.MiddlewareFunc {
	skipper := middleware.DefaultSkipper
	if perSecond <= 0 {
		skipper = func(echo.Context) bool { return true }
	}

	config := middleware.RateLimiterConfig{
		Skipper: skipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(perSecond),
				Burst:     burst,
				ExpiresIn: 3 * time.Minute,
			},
		),

		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},

		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(http.StatusForbidden,
				dto.NewBaseResponse(http.StatusForbidden, "Access forbidden: Rate limiter error occurred", nil))
		},

		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(http.StatusTooManyRequests,
				dto.NewBaseResponse(http.StatusTooManyRequests, "Too many requests: Rate limit exceeded. Please try again later", nil))
		},
	}

	return middleware.RateLimiterWithConfig(config)
}
