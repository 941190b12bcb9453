package common

import "net/http"

// APIError is an error that already knows how it is shown to the client.
type APIError struct {
	Status int
	Msg    string
}

func (e *APIError) Error() string {
	return e.Msg
}

func BadRequest(msg string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Msg: msg}
}

func Unauthenticated(msg string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Msg: msg}
}

func NotFound(msg string) *APIError {
	return &APIError{Status: http.StatusNotFound, Msg: msg}
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Msg string `json:"msg"`
}
