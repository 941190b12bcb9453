package handlers

import (
	"errors"
	"net/http"

	"jobsapi/internal/common"
	"jobsapi/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	msgInternal      = "Something went wrong try again later"
	msgRouteNotFound = "Route does not exist"
)

// NewHTTPErrorHandler returns the echo error handler that turns every error
// into a {"msg": "..."} reply. Unexpected errors are logged and hidden.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, msg := translateError(err)
		if status == http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("uri", c.Request().RequestURI).
				Msg("unhandled error")
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, common.ErrorResponse{Msg: msg})
		}
		if writeErr != nil {
			log.Error().Err(writeErr).Msg("failed to write error response")
		}
	}
}

func translateError(err error) (int, string) {
	var apiErr *common.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status, apiErr.Msg
	}

	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Error()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusNotFound:
			return http.StatusNotFound, msgRouteNotFound
		case http.StatusInternalServerError:
			return http.StatusInternalServerError, msgInternal
		}
		if msg, ok := httpErr.Message.(string); ok {
			return httpErr.Code, msg
		}
		return httpErr.Code, http.StatusText(httpErr.Code)
	}

	return http.StatusInternalServerError, msgInternal
}
