package middleware

import (
	"net/http"
	"time"

	"jobsapi/internal/common"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

var ErrTooManyRequests = &common.APIError{Status: http.StatusTooManyRequests, Msg: "Too many requests, please try again later."}

// RateLimiter caps each client IP using store.
func RateLimiter(store echoMiddleware.RateLimiterStore) echo.MiddlewareFunc {
	return echoMiddleware.RateLimiterWithConfig(echoMiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return ErrTooManyRequests
		},
	})
}

// NewMemoryRateLimiterStore approximates max requests per window with a token
// bucket. Used when no Redis is configured.
func NewMemoryRateLimiterStore(max int, window time.Duration) echoMiddleware.RateLimiterStore {
	return echoMiddleware.NewRateLimiterMemoryStoreWithConfig(echoMiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(max) / window.Seconds()),
		Burst:     max,
		ExpiresIn: window,
	})
}
