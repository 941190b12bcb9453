package middleware

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// Secure sets the usual security response headers. HSTS is only sent in
// production.
func Secure(production bool) echo.MiddlewareFunc {
	cfg := echoMiddleware.SecureConfig{
		XSSProtection:      "0",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		ReferrerPolicy:     "no-referrer",
	}
	if production {
		cfg.HSTSMaxAge = 15552000
	}
	return echoMiddleware.SecureWithConfig(cfg)
}
