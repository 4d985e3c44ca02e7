package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound = errors.New("data not found")

	// * Communication errors.
	ErrBadRequest     = errors.New("error parsing request")
	ErrQueueClosed    = errors.New("push queue is not accepting orders")
	ErrSyncInProgress = errors.New("status sync is already running")

	// * Line item validation errors.
	ErrMissingBeneficiary  = errors.New("beneficiary number is missing")
	ErrUnsupportedNetwork  = errors.New("product network is not supported")
	ErrMissingSize         = errors.New("product variant size is missing")
	ErrInvalidFulfillment  = errors.New("fulfillment request is not valid")
	ErrNotifierUnavailable = errors.New("notification sender is not configured")

	// * Upstream errors.
	ErrUpstreamRejected  = errors.New("upstream rejected request")
	ErrUpstreamTransport = errors.New("upstream request failed")
	ErrMalformedResponse = errors.New("upstream response is malformed")
)

// UpstreamError is a non-success HTTP reply of an external API.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream replied %d: %s", e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstreamRejected
}
