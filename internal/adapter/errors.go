package adapter

import (
	"errors"
	"fmt"

	"github.com/pmezhin/vesselwatch/models"
)

// Sentinel errors describing upstream failure classes. They are wrapped by
// [*UpstreamError] and checked with [errors.Is].
var (
	// ErrVesselNotFound indicates the site has no page for the requested
	// vessel identifier (HTTP 404).
	ErrVesselNotFound = errors.New("vessel not found")

	// ErrSessionExpired indicates the stored cookies were rejected
	// (HTTP 401 or 403). The cookie export needs to be refreshed.
	ErrSessionExpired = errors.New("upstream session expired")

	// ErrUpstreamUnavailable indicates the site failed to answer: a 5xx
	// status, a timeout, or a transport-level failure.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrMalformedResponse indicates a 2xx response whose body was not the
	// expected JSON, typically an HTML page served instead of data.
	ErrMalformedResponse = errors.New("malformed upstream response")
)

// UpstreamError describes a failed fetch of one vessel resource. Its Error
// text is the exact message embedded into the failed slot of the aggregated
// payload, so changing the format changes the API surface.
type UpstreamError struct {
	// Resource is the data section the fetch was for.
	Resource models.VesselResource

	// StatusCode is the upstream HTTP status code, or 0 when the request
	// never produced a response.
	StatusCode int

	// Status describes the failure: the status line for HTTP errors
	// ("404 Not Found"), or a short description for transport and decode
	// failures.
	Status string

	err error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Failed to fetch vessel %s data: %s", e.Resource, e.Status)
}

// Unwrap exposes the wrapped sentinel (and, for transport and decode
// failures, the underlying cause) to errors.Is and errors.As.
func (e *UpstreamError) Unwrap() error {
	return e.err
}

// newTransportError wraps a request that never produced a response:
// connection refused, DNS failure, or a timeout.
func newTransportError(resource models.VesselResource, cause error) *UpstreamError {
	return &UpstreamError{
		Resource: resource,
		Status:   cause.Error(),
		err:      fmt.Errorf("%w: %w", ErrUpstreamUnavailable, cause),
	}
}

// newDecodeError wraps a 2xx response whose body could not be decoded.
func newDecodeError(resource models.VesselResource, cause error) *UpstreamError {
	return &UpstreamError{
		Resource: resource,
		Status:   "malformed upstream response",
		err:      fmt.Errorf("%w: %w", ErrMalformedResponse, cause),
	}
}
