package raxios

import (
	"errors"
	"fmt"
	"time"
)

// Error type discriminators carried by ClientError.Type.
const (
	// ErrorTypeConfiguration marks invalid client setup (bad base URL,
	// malformed default headers). Not retryable.
	ErrorTypeConfiguration = "Configuration"
	// ErrorTypeTransport marks network-level failures (DNS, TLS, timeouts)
	// surfaced by the underlying http.Client. Callers may retry.
	ErrorTypeTransport = "Transport"
	// ErrorTypeCodec marks serialization or deserialization failures.
	ErrorTypeCodec = "Codec"
	// ErrorTypeEmptyBody marks an empty response body where a typed body
	// was expected.
	ErrorTypeEmptyBody = "EmptyBody"
	// ErrorTypeHTTPStatus marks a non-2xx response under strict status
	// checking.
	ErrorTypeHTTPStatus = "HTTPStatus"
	// ErrorTypeUnsupportedShape marks a value whose shape the selected
	// codec cannot represent (e.g. nested structures in form encoding).
	ErrorTypeUnsupportedShape = "UnsupportedShape"
)

// Sentinel errors for common failure scenarios.
var (
	// ErrEmptyBody is returned when a 2xx response carries no body but the
	// caller requested a typed body. Use NoBody as the response type when
	// no body is expected.
	ErrEmptyBody = errors.New("raxios: empty response body")

	// ErrUnsupportedShape is returned when a value cannot be represented
	// in the selected serialization format.
	ErrUnsupportedShape = errors.New("raxios: unsupported value shape")

	// ErrInvalidHeader is returned at construction for default headers
	// that are not valid HTTP header syntax.
	ErrInvalidHeader = errors.New("raxios: invalid header")
)

// ClientError is the error type returned by all client operations. Type
// identifies the failure class; Cause holds the underlying error, if any.
type ClientError struct {
	Type       string
	Message    string
	Cause      error
	RequestID  string
	Method     string
	URL        string
	StatusCode int
	Timestamp  time.Time
	Duration   time.Duration
}

// Error implements error interface.
func (e *ClientError) Error() string {
	if e == nil {
		return "<nil>"
	}

	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (%v)", msg, e.Cause)
	}
	if e.RequestID != "" {
		msg = fmt.Sprintf("[%s] %s", e.RequestID, msg)
	}
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *ClientError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is compares error types for errors.Is.
func (e *ClientError) Is(target error) bool {
	if e == nil {
		return false
	}
	if targetErr, ok := target.(*ClientError); ok {
		return e.Type == targetErr.Type
	}
	return false
}

// IsRetryable reports whether an error represents a failure that might
// succeed on retry: transport failures, 5xx statuses and 429 under strict
// status checking. Configuration and codec errors are never retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		switch clientErr.Type {
		case ErrorTypeTransport:
			return true
		case ErrorTypeHTTPStatus:
			return clientErr.StatusCode == 429 || clientErr.StatusCode >= 500
		default:
			return false
		}
	}

	return false
}

// DebugInfo renders a multi-line string with diagnostic context.
func (e *ClientError) DebugInfo() string {
	if e == nil {
		return "Error: <nil>"
	}
	info := fmt.Sprintf("Error Type: %s\n", e.Type)
	info += fmt.Sprintf("Message: %s\n", e.Message)
	if e.RequestID != "" {
		info += fmt.Sprintf("Request ID: %s\n", e.RequestID)
	}
	if e.Method != "" {
		info += fmt.Sprintf("Method: %s\n", e.Method)
	}
	if e.URL != "" {
		info += fmt.Sprintf("URL: %s\n", e.URL)
	}
	if e.StatusCode > 0 {
		info += fmt.Sprintf("Status Code: %d\n", e.StatusCode)
	}
	if !e.Timestamp.IsZero() {
		info += fmt.Sprintf("Timestamp: %s\n", e.Timestamp.Format(time.RFC3339))
	}
	if e.Duration > 0 {
		info += fmt.Sprintf("Duration: %v\n", e.Duration)
	}
	if e.Cause != nil {
		info += fmt.Sprintf("Cause: %v\n", e.Cause)
	}
	return info
}

func newConfigurationError(message string, cause error) *ClientError {
	return &ClientError{
		Type:      ErrorTypeConfiguration,
		Message:   message,
		Cause:     cause,
		Timestamp: time.Now(),
	}
}

func newCodecError(message string, cause error) *ClientError {
	errType := ErrorTypeCodec
	if errors.Is(cause, ErrUnsupportedShape) {
		errType = ErrorTypeUnsupportedShape
	}
	return &ClientError{
		Type:      errType,
		Message:   message,
		Cause:     cause,
		Timestamp: time.Now(),
	}
}
