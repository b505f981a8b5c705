package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCart indicates a checkout was attempted with no items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNetwork marks transport-level submission failures: unreachable
	// host, timed-out request, unreadable response.
	ErrNetwork = errors.New("order service unreachable")
)

// RejectedError is a business-level rejection returned by the order endpoint.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return "order rejected: " + e.Message
}
