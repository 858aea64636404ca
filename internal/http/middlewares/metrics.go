package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "taskapp_requests_total",
		Help: "Total number of HTTP requests handled, by route and status.",
	}, []string{"method", "path", "status"})

	errorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "taskapp_errors_total",
		Help: "Total number of failed HTTP requests, by route.",
	}, []string{"path"})
)

func init() {
	prometheus.MustRegister(requestCounter, errorCounter)
}

func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			status := c.Response().Status
			if err != nil {
				var httpErr *echo.HTTPError
				if errors.As(err, &httpErr) {
					status = httpErr.Code
				} else {
					status = http.StatusInternalServerError
				}
				errorCounter.WithLabelValues(c.Path()).Inc()
			}

			requestCounter.WithLabelValues(c.Request().Method, c.Path(), strconv.Itoa(status)).Inc()
			return err
		}
	}
}
