package server

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUpstream indicates a job provider could not be queried
type ErrUpstream struct {
	Cause error
}

func (e *ErrUpstream) Error() string {
	return fmt.Sprintf("upstream error: %v", e.Cause)
}

func (e *ErrUpstream) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// publicMessage is the client-facing error body for err. Upstream details
// stay in the server log.
func publicMessage(err error) string {
	var validationErr *ErrValidation
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	return "Error fetching jobs"
}
