package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobsapi/internal/common"
	"jobsapi/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "api error",
			err:        common.NotFound("No job with id 1"),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"msg":"No job with id 1"}`,
		},
		{
			name: "validation error",
			err: &services.ValidationError{Fields: []services.FieldError{
				{Field: "company", Msg: "Please provide company name"},
				{Field: "position", Msg: "Please provide position"},
			}},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"msg":"Please provide company name,Please provide position"}`,
		},
		{
			name:       "unknown route",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"msg":"Route does not exist"}`,
		},
		{
			name:       "echo error with message",
			err:        echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantBody:   `{"msg":"Request Entity Too Large"}`,
		},
		{
			name:       "unexpected error is hidden",
			err:        errors.New("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"msg":"Something went wrong try again later"}`,
		},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			handler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHTTPErrorHandler_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	assert.NoError(t, c.NoContent(http.StatusOK))

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
