package raxios

import (
	"fmt"
	"net/http"
	"time"
)

// WithHeader sets one default header sent with every request.
func WithHeader(name, value string) Option {
	return func(c *Client) {
		c.rawHeaders[name] = value
	}
}

// WithHeaders sets default headers sent with every request. Keys are
// case-insensitive; last write wins.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for name, value := range headers {
			c.rawHeaders[name] = value
		}
	}
}

// WithContentType sets the default request serialization format.
func WithContentType(ct ContentType) Option {
	return func(c *Client) {
		c.contentType = ct
	}
}

// WithAccept sets the default Accept header format.
func WithAccept(ct ContentType) Option {
	return func(c *Client) {
		c.accept = ct
	}
}

// WithUserAgent overrides the default raxios/<version> user agent.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithTimeout sets the request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
		if c.httpClient != nil {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient sets a custom HTTP client for the network exchange.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
		if c.timeout != 0 && c.httpClient != nil {
			c.httpClient.Timeout = c.timeout
		}
	}
}

// WithStrictStatus makes every non-2xx response fail with an HTTPStatus
// error instead of being returned as an ordinary response.
func WithStrictStatus() Option {
	return func(c *Client) {
		c.strictStatus = true
	}
}

// WithStrictDecoding makes the JSON codec reject unknown fields in
// response bodies.
func WithStrictDecoding() Option {
	return func(c *Client) {
		c.strictDecoding = true
	}
}

// WithCodec registers a codec, replacing the built-in implementation for
// its content type.
func WithCodec(codec Codec) Option {
	return func(c *Client) {
		if codec == nil {
			return
		}
		c.codecs[codec.ContentType()] = codec
	}
}

// WithMarshaler sets a custom JSON encoder used by the default JSON codec.
func WithMarshaler(m Marshaler) Option {
	return func(c *Client) {
		c.marshaler = m
	}
}

// WithUnmarshaler sets a custom JSON decoder used by the default JSON codec.
func WithUnmarshaler(u Unmarshaler) Option {
	return func(c *Client) {
		c.unmarshaler = u
	}
}

// WithMiddleware adds middleware to the client. Middleware wraps the
// transport and is the extension point for caller-owned retries, auth,
// tracing and similar cross-cutting concerns.
func WithMiddleware(middleware ...Middleware) Option {
	return func(c *Client) {
		c.middleware = append(c.middleware, middleware...)
	}
}

// WithMetrics enables Prometheus metrics collection on the default registry.
func WithMetrics() Option {
	return func(c *Client) {
		c.metrics = NewMetricsCollector()
	}
}

// WithMetricsCollector sets a custom metrics collector.
func WithMetricsCollector(collector *MetricsCollector) Option {
	return func(c *Client) {
		c.metrics = collector
	}
}

// WithDebug enables debug logging with default configuration.
func WithDebug() Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.Enabled = true
	}
}

// WithDebugConfig sets custom debug configuration.
func WithDebugConfig(config *DebugConfig) Option {
	return func(c *Client) {
		c.debug = config
	}
}

// WithLogger sets a custom logger for debug output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithSimpleLogger enables debug logging with a simple console logger.
func WithSimpleLogger() Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.Enabled = true
		c.logger = NewSimpleLogger()
	}
}

// WithRequestIDGenerator sets a custom function for generating request IDs.
func WithRequestIDGenerator(gen func() string) Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.RequestIDGen = gen
	}
}

// validate checks the assembled configuration and returns a Configuration
// error accumulating every problem found.
func (c *Client) validate() error {
	var problems []string

	problems = append(problems, c.validateTransport()...)
	problems = append(problems, c.validateContentTypes()...)
	problems = append(problems, c.validateMiddleware()...)
	problems = append(problems, c.validateDebug()...)

	if len(problems) > 0 {
		return newConfigurationError("configuration validation failed", fmt.Errorf("validation errors: %v", problems))
	}

	return nil
}

func (c *Client) validateTransport() []string {
	var problems []string

	if c.httpClient == nil {
		problems = append(problems, "HTTP client cannot be nil")
	}
	if c.timeout < 0 {
		problems = append(problems, "timeout must be non-negative")
	}

	return problems
}

func (c *Client) validateContentTypes() []string {
	var problems []string

	if c.contentType != ContentTypeUnspecified && c.contentType.String() == "" {
		problems = append(problems, "default content type is not a known format")
	}
	if c.accept != ContentTypeUnspecified && c.accept.String() == "" {
		problems = append(problems, "default accept type is not a known format")
	}
	for ct, codec := range c.codecs {
		if codec == nil {
			problems = append(problems, fmt.Sprintf("codec for %q cannot be nil", ct.String()))
		}
	}

	return problems
}

func (c *Client) validateMiddleware() []string {
	var problems []string

	for i, middleware := range c.middleware {
		if middleware == nil {
			problems = append(problems, fmt.Sprintf("middleware[%d] cannot be nil", i))
		}
	}

	return problems
}

func (c *Client) validateDebug() []string {
	var problems []string

	if c.debug != nil && c.debug.Enabled {
		if c.debug.RequestIDGen == nil {
			problems = append(problems, "debug RequestIDGen must be set when debug is enabled")
		}
		if c.logger == nil {
			problems = append(problems, "logger must be set when debug is enabled")
		}
	}

	return problems
}
