package common

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserContextRoundTrip(t *testing.T) {
	id := uuid.New()
	ctx := WithUser(context.Background(), id, "Ann")

	gotID, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, gotID)

	name, ok := GetUserNameFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "Ann", name)
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestSanitizeHTMLElement(t *testing.T) {
	assert.Equal(t, "&lt;script>alert(1)&lt;/script>", SanitizeHTMLElement("<script>alert(1)</script>"))
	assert.Equal(t, "O'Neil & Sons", SanitizeHTMLElement("O'Neil & Sons"))

	field := "<b>Acme</b>"
	SanitizeHTMLField(&field)
	assert.Equal(t, "&lt;b>Acme&lt;/b>", field)

	SanitizeHTMLField(nil)
}

func TestAPIError(t *testing.T) {
	err := NotFound("No job with id 1")
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.EqualError(t, err, "No job with id 1")
	assert.Equal(t, http.StatusBadRequest, BadRequest("x").Status)
	assert.Equal(t, http.StatusUnauthorized, Unauthenticated("x").Status)
}
