// Package routes assembles the echo server: request pipeline, error
// translation and every HTTP route.
package routes

import (
	"net/http"

	_ "jobsapi/docs"
	"jobsapi/internal/config"
	"jobsapi/internal/handlers"
	"jobsapi/internal/middleware"
	"jobsapi/internal/services"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Deps are the collaborators the server is built from.
type Deps struct {
	Config         *config.Config
	Log            zerolog.Logger
	Tokens         services.TokenService
	Accounts       services.AccountService
	Jobs           services.JobService
	RateLimitStore echoMiddleware.RateLimiterStore
	Health         *handlers.HealthHandlers
}

// New builds the echo instance. Middleware order matters: request id and
// logging wrap everything, the rate limiter runs before any body is read,
// and the auth gate guards only the jobs group.
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handlers.NewHTTPErrorHandler(d.Log)

	if d.Config.Server.TrustProxy {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	} else {
		e.IPExtractor = echo.ExtractIPDirect()
	}

	store := d.RateLimitStore
	if store == nil {
		store = middleware.NewMemoryRateLimiterStore(d.Config.RateLimit.Max, d.Config.RateLimit.Window)
	}

	e.Use(echoMiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RateLimiter(store))
	e.Use(echoMiddleware.BodyLimit(d.Config.Server.BodyLimit))
	e.Use(middleware.Secure(d.Config.IsProduction()))
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: d.Config.Server.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/", handlers.Landing)
	e.GET("/api-docs", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, "/api-docs/index.html")
	})
	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	if d.Health != nil {
		e.GET("/health", d.Health.LivenessCheck)
		e.GET("/health/ready", d.Health.ReadinessCheck)
	}

	versions := middleware.NewVersionMiddleware()
	v1 := versions.VersionRoute(e, "/api", "v1")

	authHandlers := handlers.NewAuthHandlers(d.Accounts)
	auth := v1.Group("/auth")
	auth.POST("/register", authHandlers.Register)
	auth.POST("/login", authHandlers.Login)

	jobHandlers := handlers.NewJobHandlers(d.Jobs)
	jobs := v1.Group("/jobs", middleware.AuthGate(d.Tokens))
	jobs.GET("", jobHandlers.ListJobs)
	jobs.POST("", jobHandlers.CreateJob)
	jobs.GET("/:id", jobHandlers.GetJob)
	jobs.PATCH("/:id", jobHandlers.UpdateJob)
	jobs.DELETE("/:id", jobHandlers.DeleteJob)

	return e
}
