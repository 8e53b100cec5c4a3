package raxios

import (
	"net/http"
	"net/url"
	"time"

	"github.com/dbidwell94/raxios/internal/headerutil"
)

// Client is an ergonomic HTTP client bound to a base URL. It resolves
// per-call Options over its defaults, serializes request bodies through
// the codec layer and delegates every network exchange to the underlying
// http.Client. A Client is immutable after construction and safe for
// concurrent use.
type Client struct {
	httpClient     *http.Client
	baseURL        *url.URL
	headers        http.Header
	contentType    ContentType
	accept         ContentType
	strictStatus   bool
	strictDecoding bool
	userAgent      string
	timeout        time.Duration
	codecs         map[ContentType]Codec
	marshaler      Marshaler
	unmarshaler    Unmarshaler
	middleware     []Middleware
	metrics        *MetricsCollector
	debug          *DebugConfig
	logger         Logger

	rawHeaders map[string]string
}

// New constructs a Client for the given base URL using the provided
// functional options. Construction fails with a Configuration error when
// the base URL is not an absolute URL or when default headers are not
// valid header syntax; no network activity happens on this path.
func New(baseURL string, options ...Option) (*Client, error) {
	client := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		contentType: ContentTypeJSON,
		accept:      ContentTypeJSON,
		userAgent:   defaultUserAgent(),
		timeout:     30 * time.Second,
		codecs:      map[ContentType]Codec{},
		middleware:  []Middleware{},
		debug:       DefaultDebugConfig(),
		rawHeaders:  map[string]string{},
	}

	for _, option := range options {
		option(client)
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return nil, newConfigurationError(baseURL+" is not a valid URL", err)
	}
	client.baseURL = parsed

	if err := headerutil.Validate(client.rawHeaders); err != nil {
		return nil, &ClientError{
			Type:      ErrorTypeConfiguration,
			Message:   "invalid default headers",
			Cause:     err,
			Timestamp: time.Now(),
		}
	}
	client.headers = headerutil.FromMap(client.rawHeaders)

	// Caller-supplied defaults win over the built-in ones.
	if client.headers.Get("User-Agent") == "" {
		client.headers.Set("User-Agent", client.userAgent)
	}
	if ct := resolveContentType(client.contentType); client.headers.Get("Content-Type") == "" {
		client.headers.Set("Content-Type", ct.String())
	}
	if accept := resolveContentType(client.accept); client.headers.Get("Accept") == "" {
		client.headers.Set("Accept", accept.String())
	}

	client.installDefaultCodecs()

	if err := client.validate(); err != nil {
		return nil, err
	}

	return client, nil
}

// BaseURL returns the base URL the client was constructed with.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// DefaultHeaders returns a copy of the resolved default headers, including
// the built-in user-agent, content-type and accept entries.
func (c *Client) DefaultHeaders() map[string]string {
	return headerutil.ToMap(c.headers)
}

// Do executes a prepared *http.Request through the middleware chain,
// recording metrics and debug logs. It is the untyped escape hatch; the
// typed verb functions build on the same path.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.doRequest(req, c.newRequestID())
}

func (c *Client) doRequest(req *http.Request, requestID string) (*http.Response, error) {
	start := time.Now()
	endpoint := endpointLabel(req.URL)

	if c.debugEnabled() && c.debug.LogRequests {
		c.logger.Debug("Starting request", "requestID", requestID, "method", req.Method, "url", req.URL.String(), "endpoint", endpoint)
	}

	c.metrics.RecordRequestStart(req.Method, endpoint)
	resp, err := c.executeMiddleware(req)
	c.metrics.RecordRequestEnd(req.Method, endpoint)

	duration := time.Since(start)
	if err != nil {
		c.metrics.RecordError(ErrorTypeTransport, req.Method, endpoint)
		if c.debugEnabled() {
			c.logger.Warn("Request failed", "requestID", requestID, "method", req.Method, "endpoint", endpoint, "error", err.Error())
		}
		return nil, &ClientError{
			Type:      ErrorTypeTransport,
			Message:   "request failed",
			Cause:     err,
			RequestID: requestID,
			Method:    req.Method,
			URL:       req.URL.String(),
			Timestamp: time.Now(),
			Duration:  duration,
		}
	}

	c.metrics.RecordRequest(req.Method, endpoint, resp.StatusCode, duration)

	if c.debugEnabled() && c.debug.LogResponses {
		c.logger.Debug("Received response", "requestID", requestID, "status", resp.StatusCode, "endpoint", endpoint, "duration", duration)
	}

	return resp, nil
}

func (c *Client) executeMiddleware(req *http.Request) (*http.Response, error) {
	if len(c.middleware) == 0 {
		return c.httpClient.Do(req)
	}

	current := RoundTripperFunc(c.httpClient.Do)

	for i := len(c.middleware) - 1; i >= 0; i-- {
		middleware := c.middleware[i]
		next := current
		current = RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			return middleware(r, next)
		})
	}

	return current.RoundTrip(req)
}
