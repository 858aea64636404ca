package http

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	config "task-tracker.com/task-tracker/internal/configs"
	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
	"task-tracker.com/task-tracker/internal/ratelimit"
	"task-tracker.com/task-tracker/internal/services"
)

func Register(
	e *echo.Echo,
	h *Handler,
	ah *AuthHandler,
	authService *services.AuthService,
	limiter ratelimit.Limiter,
	log *logrus.Logger,
	cfg config.Config,
) {
	e.Use(echomw.CORS())
	e.Use(middleware.RateLimiter(limiter))
	e.Use(middleware.Metrics())
	if cfg.Env == "development" {
		e.Use(middleware.RequestLogger(log))
	}

	api := e.Group("/api")
	api.POST("/auth/register", ah.Register)
	api.POST("/auth/login", ah.Login)

	authed := api.Group("", middleware.BearerAuth(authService))
	authed.GET("/auth/me", ah.Me)
	authed.GET("/tasks", h.ListTasks)
	authed.POST("/tasks", h.CreateTask)
	authed.PUT("/tasks/:id", h.UpdateTask)
	authed.DELETE("/tasks/:id", h.DeleteTask)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Production serves the built client with an index fallback for
	// client-side routes.
	if cfg.Env == "production" {
		e.Use(echomw.StaticWithConfig(echomw.StaticConfig{
			Root:  cfg.StaticDir,
			HTML5: true,
		}))
	}
}
