package middleware

import (
	"jobsapi/internal/common"
	"jobsapi/internal/models"
	"jobsapi/internal/services"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// ErrAuthenticationInvalid is the only error the auth gate returns, whatever
// went wrong with the token.
var ErrAuthenticationInvalid = common.Unauthenticated("Authentication invalid")

// AuthGate requires "Authorization: Bearer <token>", verifies the token and
// puts the caller's identity on the request context.
func AuthGate(tokens services.TokenService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:Authorization:Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return tokens.Verify(auth)
		},
		SuccessHandler: func(c echo.Context) {
			identity, ok := c.Get("user").(*models.Identity)
			if !ok {
				return
			}
			ctx := common.WithUser(c.Request().Context(), identity.UserID, identity.Name)
			c.SetRequest(c.Request().WithContext(ctx))
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return ErrAuthenticationInvalid
		},
	})
}
