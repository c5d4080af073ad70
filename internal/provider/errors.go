// Package provider holds the error classes shared by the external-service
// clients so handlers can map failures without knowing which provider failed.
package provider

import "errors"

var (
	// ErrUnavailable covers network failures and provider 5xx responses.
	ErrUnavailable = errors.New("provider unavailable")
	// ErrRejected covers provider 4xx responses (bad input, auth).
	ErrRejected = errors.New("provider rejected request")
	// ErrMalformedResponse means a 2xx response carried no usable payload.
	ErrMalformedResponse = errors.New("provider returned malformed response")
)

// ClassifyStatus maps a non-2xx HTTP status to the matching error class.
func ClassifyStatus(status int) error {
	if status >= 400 && status < 500 {
		return ErrRejected
	}
	return ErrUnavailable
}
