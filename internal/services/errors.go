package services

import (
	"errors"
	"fmt"
	"strings"

	"jobsapi/internal/common"

	"github.com/google/uuid"
)

var (
	// ErrInvalidToken covers malformed, tampered and expired session tokens.
	ErrInvalidToken = errors.New("invalid token")

	ErrMissingCredentials = common.BadRequest("Please provide email and password")
	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	ErrInvalidCredentials = common.Unauthenticated("Invalid Credentials")
	ErrDuplicateEmail     = common.BadRequest("Duplicate value entered for email field, please choose another value")
	ErrEmptyJobFields     = common.BadRequest("Company or Position fields cannot be empty")
)

func jobNotFound(id uuid.UUID) error {
	return common.NotFound(fmt.Sprintf("No job with id %s", id))
}

// FieldError is a single failed field rule.
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

// ValidationError reports every rule an input broke.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Msg)
	}
	return strings.Join(msgs, ",")
}
