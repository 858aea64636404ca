package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/services"
	model "task-tracker.com/task-tracker/pkg/models"
)

const userContextKey = "user"

// BearerAuth resolves the Authorization header to a user and stores it on the
// request context. Requests without a valid bearer token never reach the
// handler.
func BearerAuth(authService *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			user, err := authService.Identify(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CallerFrom returns the authenticated user stored by BearerAuth. Only valid
// on routes behind that middleware.
func CallerFrom(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}
