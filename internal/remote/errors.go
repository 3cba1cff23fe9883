package remote

import (
	"errors"
	"fmt"
)

const (
	CodeValidation = "validation"
	CodeNotFound   = "not_found"
	CodeConflict   = "conflict"
)

var (
	ErrValidation      = errors.New("the remote API rejected the request as invalid")
	ErrNotFound        = errors.New("the remote API does not know the resource")
	ErrConflict        = errors.New("the remote API reported a conflict")
	ErrUnavailable     = errors.New("the remote API could not be reached")
	ErrInvalidResponse = errors.New("the remote API sent an invalid response")
)

// APIError is an error response of the remote API.
type APIError struct {
	Status int
	Code   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("remote API responded with status %d: %s", e.Status, e.Code)
}

// Is maps the error codes of the remote API to the sentinel errors.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Code == CodeValidation
	case ErrNotFound:
		return e.Code == CodeNotFound
	case ErrConflict:
		return e.Code == CodeConflict
	}

	return false
}

// Message returns a message for the error that can be shown to users.
func (e *APIError) Message() string {
	switch e.Code {
	case CodeValidation:
		return "Validation error. Please check your input."
	case CodeConflict:
		return "Conflict. This item is in use or violates a rule."
	case CodeNotFound:
		return "Not found. It may have been deleted already."
	default:
		return "Request failed. Please try again."
	}
}

// Message returns the user facing message for any error returned by the
// client.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}

	return "Request failed. Please try again."
}
