package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/auth"
	config "task-tracker.com/task-tracker/internal/configs"
	httpapi "task-tracker.com/task-tracker/internal/http"
	"task-tracker.com/task-tracker/internal/ratelimit"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task tracker REST API, serving the built client in production mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logrus.New()

		if err := godotenv.Load(); err != nil {
			log.Info(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.New(cfg.DatabaseDSN)

		taskRepo := repository.NewTaskRepository(database)
		userRepo := repository.NewUserRepository(database)

		hasher := auth.NewPasswordHasher()
		tokens := auth.NewJWTManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

		taskService := services.NewTaskService(taskRepo)
		authService := services.NewAuthService(userRepo, hasher, tokens)

		limitCfg := ratelimit.Config{Limit: cfg.RateLimit, Window: time.Minute}
		var limiter ratelimit.Limiter
		if cfg.RedisAddr != "" {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			limiter = ratelimit.NewRedisLimiter(redisClient, cfg.RedisRateLimitPrefix, limitCfg)
		} else {
			limiter = ratelimit.NewMemoryLimiter(limitCfg)
		}

		e := echo.New()
		e.HideBanner = true

		handler := httpapi.NewHandler(taskService)
		authHandler := httpapi.NewAuthHandler(authService)
		httpapi.Register(e, handler, authHandler, authService, limiter, log, cfg)

		go func() {
			log.Infof("server running in %s mode on %s", cfg.Env, cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Infof("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		log.Info("server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
