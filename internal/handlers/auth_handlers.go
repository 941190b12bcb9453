package handlers

import (
	"net/http"

	"jobsapi/internal/common"
	"jobsapi/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandlers handles registration and login requests
type AuthHandlers struct {
	accounts services.AccountService
}

// NewAuthHandlers creates a new auth handlers instance
func NewAuthHandlers(accounts services.AccountService) *AuthHandlers {
	return &AuthHandlers{accounts: accounts}
}

// Register creates an account and returns a session token for it
//
// @Summary Register a user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body services.RegisterInput true "New account"
// @Success 201 {object} models.AuthResponse
// @Failure 400 {object} common.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandlers) Register(c echo.Context) error {
	var req services.RegisterInput
	if err := c.Bind(&req); err != nil {
		return err
	}
	req.Name = common.SanitizeHTMLElement(req.Name)

	resp, err := h.accounts.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, resp)
}

// Login exchanges email and password for a session token
//
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body services.LoginInput true "Credentials"
// @Success 200 {object} models.AuthResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandlers) Login(c echo.Context) error {
	var req services.LoginInput
	if err := c.Bind(&req); err != nil {
		return err
	}

	resp, err := h.accounts.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}
