package raxios

import "net/http"

// Options carries per-call overrides. The zero value requests default
// behavior; a nil *Options is equivalent to the zero value.
type Options struct {
	// Headers are merged over the client's default headers; per-call
	// values win on key collision.
	Headers map[string]string

	// Params are appended to the request URL as query parameters.
	Params map[string]string

	// ContentType overrides the client's default request serialization
	// format when not ContentTypeUnspecified.
	ContentType ContentType

	// Accept sets the Accept header when not ContentTypeUnspecified.
	Accept ContentType

	// SkipDecode leaves the response body undecoded; Response.RawBody is
	// still populated.
	SkipDecode bool

	// StrictStatus makes non-2xx responses fail with an HTTPStatus error
	// for this call, regardless of the client setting.
	StrictStatus bool
}

// NoBody is the response type to use when no response body is expected.
// Decoding an empty body into NoBody succeeds and leaves Response.Body nil.
type NoBody struct{}

// Middleware represents a middleware function wrapping the transport.
type Middleware func(req *http.Request, next RoundTripper) (*http.Response, error)

// RoundTripper represents the HTTP transport interface.
type RoundTripper interface {
	RoundTrip(*http.Request) (*http.Response, error)
}

// RoundTripperFunc is a helper type for middleware.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Option represents a configuration option for New.
type Option func(*Client)
