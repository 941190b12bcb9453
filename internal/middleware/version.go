package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// APIVersion represents API version information
type APIVersion struct {
	Version    string     `json:"version"`
	Status     string     `json:"status"` // "active", "deprecated"
	SunsetDate *time.Time `json:"sunset_date,omitempty"`
	Message    string     `json:"message,omitempty"`
}

// VersionMiddleware provides API versioning functionality
type VersionMiddleware struct {
	supportedVersions map[string]APIVersion
}

// NewVersionMiddleware creates a new version middleware instance
func NewVersionMiddleware() *VersionMiddleware {
	return &VersionMiddleware{
		supportedVersions: map[string]APIVersion{
			"v1": {
				Version: "v1",
				Status:  "active",
				Message: "Current stable API version",
			},
		},
	}
}

// VersionHeader adds version information to response headers
func (vm *VersionMiddleware) VersionHeader(version string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-API-Version", version)

			if ver, exists := vm.supportedVersions[version]; exists {
				if ver.Status == "deprecated" {
					h.Set("X-API-Deprecated", "true")
					if ver.SunsetDate != nil {
						h.Set("X-API-Sunset", ver.SunsetDate.Format(time.RFC3339))
					}
				}
			}

			return next(c)
		}
	}
}

// VersionRoute creates a version-specific route group under prefix, e.g. /api/v1.
func (vm *VersionMiddleware) VersionRoute(e *echo.Echo, prefix, version string) *echo.Group {
	group := e.Group(prefix + "/" + version)
	group.Use(vm.VersionHeader(version))
	return group
}

// Deprecate marks a version as deprecated from now on.
func (vm *VersionMiddleware) Deprecate(version string, sunsetDate *time.Time) {
	ver, ok := vm.supportedVersions[version]
	if !ok {
		return
	}
	ver.Status = "deprecated"
	ver.SunsetDate = sunsetDate
	vm.supportedVersions[version] = ver
}
