package adapter

import (
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/pmezhin/vesselwatch/models"
)

// mapHTTPError converts a non-2xx upstream response into an [*UpstreamError]
// wrapping the sentinel that matches the status class. A 2xx response maps
// to nil.
func mapHTTPError(resource models.VesselResource, resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	var sentinel error
	switch {
	case code == http.StatusNotFound:
		sentinel = ErrVesselNotFound
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		sentinel = ErrSessionExpired
	case code >= http.StatusInternalServerError:
		sentinel = ErrUpstreamUnavailable
	}

	return &UpstreamError{
		Resource:   resource,
		StatusCode: code,
		Status:     resp.Status(),
		err:        sentinel,
	}
}
