package solitude

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the gateway answers 404 or a list lookup
	// matches nothing.
	ErrNotFound = errors.New("solitude: object not found")

	// ErrMultipleObjects is returned when a single-object lookup matches more
	// than one object.
	ErrMultipleObjects = errors.New("solitude: multiple objects returned")

	// ErrConnection wraps transport failures after retries are exhausted.
	ErrConnection = errors.New("solitude: connection failed")

	// ErrInvalidResponse is returned when a response body is not the JSON
	// object we expect.
	ErrInvalidResponse = errors.New("solitude: invalid response")
)

// APIError carries a non-2xx, non-404 gateway response.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	body := e.Body
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return fmt.Sprintf("solitude: HTTP %d: %s", e.Status, body)
}
