// Package raxios provides an axios-like HTTP client with typed responses
// and automatic request/response (de)serialization:
//
//   - Verb functions generic over response/request types (Get, Post, Put, ...)
//   - JSON, XML and form-urlencoded codecs selected by content type
//   - Per-client default headers merged with per-call Options
//   - Middleware chain for cross-cutting concerns (auth, retries, tracing, etc.)
//   - Optional Prometheus metrics and lightweight structured debug logging
//
// Design goals:
//   - Small surface area – functional options configure everything
//   - Exactly one network call per invocation: no retries, caching or
//     connection pooling owned by this layer (delegated to net/http or
//     user middleware)
//   - Safe concurrent use of a single *Client instance
//   - Extensibility via user supplied middleware & pluggable codecs
//
// Typical usage:
//
//	client, err := raxios.New("https://api.example.com",
//	    raxios.WithHeader("Authorization", "Bearer "+token),
//	    raxios.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//	    // invalid base URL or default headers
//	}
//	resp, err := raxios.Get[User](ctx, client, "/users/1", nil)
//	if err == nil && resp.Body != nil {
//	    fmt.Println(resp.Body.Name)
//	}
//
// Non-2xx responses are returned as ordinary responses, not errors; opt in
// to strict status checking with WithStrictStatus or Options.StrictStatus.
// The library avoids opinionated logging: provide a Logger (e.g. via
// WithSimpleLogger) + enable debug flags selectively for insight without noise.
package raxios
