package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const landingPage = `<h1>Jobs API</h1><a href="/api-docs">Documentation</a>`

// Landing serves the root page pointing at the API documentation.
func Landing(c echo.Context) error {
	return c.HTML(http.StatusOK, landingPage)
}
