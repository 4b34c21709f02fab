package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// ValidationError holds every rule the input broke, in rule order.
// Messages are user-facing and stable.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Validation error: %s", strings.Join(e.Messages, "; "))
}

// NotFoundError is returned when an operation references a missing record.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found.", e.Resource)
}

// MalformedInputError is returned when a request body can't be parsed at all.
type MalformedInputError struct {
	Message string
}

func (e *MalformedInputError) Error() string {
	return e.Message
}

// Check if err is instance of T for custom error types
func Is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

// StatusCode maps an error from any layer to the HTTP status it should produce.
func StatusCode(err error) int {
	var withStatus *ErrorWithStatusCode
	var validation *ValidationError
	var notFound *NotFoundError
	var malformed *MalformedInputError
	switch {
	case errors.As(err, &withStatus):
		return withStatus.StatusCode
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &malformed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
