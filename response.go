package raxios

import "net/http"

// Response is the envelope returned by every verb operation. It is owned
// by the caller and never mutated by the client after being returned.
type Response[T any] struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Header holds the response headers.
	Header http.Header

	// Body is the deserialized response body. It is nil when the response
	// had no body, decoding was skipped, or the status was non-2xx.
	Body *T

	// RawBody is the undecoded response payload. Empty for bodyless
	// responses.
	RawBody []byte

	// RemoteAddr is the address of the peer the response was read from,
	// when the transport exposes it.
	RemoteAddr string
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response[T]) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
