package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"routing/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"
)

// locationReportPath is the echo route template of ReportCourierLocation.
const locationReportPath = "/api/v1/couriers/:courierId/location"

// MetricsExporter records request metrics and serves the scrape endpoint.
type MetricsExporter interface {
	ObserveHTTPRequest(method, path string, status int, elapsed time.Duration)
	Handler() http.Handler
}

// RateLimit throttles location reports per courier. A non-positive
// RequestsPerSecond disables the limit.
type RateLimit struct {
	RequestsPerSecond float64
	Burst             int
	ExpiresIn         time.Duration
}

// NewRouter wires the generated API routes, request validation against the
// embedded OpenAPI document, the request middleware and the operational
// endpoints into a ready echo instance.
func NewRouter(server servers.ServerInterface, exporter MetricsExporter, limit RateLimit, logger *slog.Logger) (*echo.Echo, error) {
	spec, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load OpenAPI document: %w", err)
	}
	validator, err := requestValidator(spec)
	if err != nil {
		return nil, err
	}
	if err = registerOpenAPIDoc(); err != nil {
		return nil, fmt.Errorf("register OpenAPI document: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(requestMetrics(exporter))
	if limit.RequestsPerSecond > 0 {
		e.Use(locationReportLimiter(limit))
	}
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(exporter.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}

// errorHandler renders every echo.HTTPError, including those raised by the
// generated parameter binding and by request validation, as a servers.Error.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := http.StatusText(status)
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			message = fmt.Sprint(httpErr.Message)
		} else {
			logger.ErrorContext(c.Request().Context(), "Unhandled request error",
				"method", c.Request().Method, "path", c.Path(), "error", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, servers.Error{Code: status, Message: message})
		}
		if err != nil {
			logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", err)
		}
	}
}

func locationReportLimiter(limit RateLimit) echo.MiddlewareFunc {
	burst := limit.Burst
	if burst < 1 {
		burst = 1
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() != locationReportPath
		},
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(limit.RequestsPerSecond),
			Burst:     burst,
			ExpiresIn: limit.ExpiresIn,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.Param("courierId"), nil
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return c.JSON(http.StatusForbidden, servers.Error{Code: http.StatusForbidden, Message: "Unable to identify courier"})
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return c.JSON(http.StatusTooManyRequests, servers.Error{
				Code:    http.StatusTooManyRequests,
				Message: "Too many location reports",
			})
		},
	})
}

// requestMetrics records every request under its route pattern so that
// path parameters do not multiply series.
func requestMetrics(exporter MetricsExporter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				var httpErr *echo.HTTPError
				if errors.As(err, &httpErr) {
					status = httpErr.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			exporter.ObserveHTTPRequest(c.Request().Method, path, status, time.Since(start))
			return err
		}
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ctx := c.Request().Context()
			if v.Error != nil {
				logger.ErrorContext(ctx, "Request failed",
					"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency, "error", v.Error)
				return nil
			}
			logger.DebugContext(ctx, "Request served",
				"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	})
}
