package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobsapi/internal/common"
	"jobsapi/internal/config"
	"jobsapi/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthGate(t *testing.T) {
	tokens := services.NewTokenService(config.AuthConfig{JWTSecret: "gate-secret", JWTLifetime: time.Hour})
	userID := uuid.New()
	valid, err := tokens.Issue(userID, "Alice")
	require.NoError(t, err)

	expired, err := services.NewTokenService(config.AuthConfig{JWTSecret: "gate-secret", JWTLifetime: -time.Minute}).
		Issue(userID, "Alice")
	require.NoError(t, err)

	gate := AuthGate(tokens)
	e := echo.New()

	run := func(header string) (bool, error) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(echo.HeaderAuthorization, header)
		}
		c := e.NewContext(req, httptest.NewRecorder())

		called := false
		err := gate(func(c echo.Context) error {
			called = true
			gotID, ok := common.GetUserIDFromContext(c.Request().Context())
			assert.True(t, ok)
			assert.Equal(t, userID, gotID)
			name, _ := common.GetUserNameFromContext(c.Request().Context())
			assert.Equal(t, "Alice", name)
			return nil
		})(c)
		return called, err
	}

	called, err := run("Bearer " + valid)
	assert.NoError(t, err)
	assert.True(t, called)

	for name, header := range map[string]string{
		"missing":  "",
		"scheme":   "Basic " + valid,
		"expired":  "Bearer " + expired,
		"tampered": "Bearer " + valid + "x",
	} {
		t.Run(name, func(t *testing.T) {
			called, err := run(header)
			assert.False(t, called)
			assert.True(t, errors.Is(err, ErrAuthenticationInvalid))
		})
	}
}

func TestRateLimiter_DeniesOverLimit(t *testing.T) {
	mw := RateLimiter(NewMemoryRateLimiterStore(1, time.Minute))
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.NoError(t, mw(next)(e.NewContext(req, httptest.NewRecorder())))

	err := mw(next)(e.NewContext(req, httptest.NewRecorder()))
	assert.Equal(t, ErrTooManyRequests, err)
}

func TestVersionHeader(t *testing.T) {
	vm := NewVersionMiddleware()
	e := echo.New()
	g := vm.VersionRoute(e, "/api", "v1")
	g.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	assert.Equal(t, "v1", rec.Header().Get("X-API-Version"))
	assert.Empty(t, rec.Header().Get("X-API-Deprecated"))

	sunset := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	vm.Deprecate("v1", &sunset)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	assert.Equal(t, "true", rec.Header().Get("X-API-Deprecated"))
	assert.Equal(t, "2027-01-01T00:00:00Z", rec.Header().Get("X-API-Sunset"))
}

func TestSecure(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	rec := httptest.NewRecorder()
	require.NoError(t, Secure(false)(next)(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
	assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	assert.Equal(t, "SAMEORIGIN", rec.Header().Get(echo.HeaderXFrameOptions))
	assert.Empty(t, rec.Header().Get(echo.HeaderStrictTransportSecurity))
}
