package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"task-tracker.com/task-tracker/internal/ratelimit"
)

func RateLimiter(limiter ratelimit.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "rate limiter unavailable")
			}
			if !ok {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}
