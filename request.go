package raxios

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptrace"
	"net/url"
	"time"

	"github.com/dbidwell94/raxios/internal/headerutil"
)

// Get sends an HTTP GET to the endpoint, decoding the response body into T.
func Get[T any](ctx context.Context, c *Client, endpoint string, opts *Options) (*Response[T], error) {
	return do[T](ctx, c, http.MethodGet, endpoint, nil, opts)
}

// Head sends an HTTP HEAD to the endpoint. HEAD responses never carry a
// body, so only the status and headers are populated.
func Head(ctx context.Context, c *Client, endpoint string, opts *Options) (*Response[NoBody], error) {
	return do[NoBody](ctx, c, http.MethodHead, endpoint, nil, opts)
}

// Post sends an HTTP POST to the endpoint. A nil body sends no payload
// rather than an encoded null. The response body is decoded into T.
func Post[T, U any](ctx context.Context, c *Client, endpoint string, body *U, opts *Options) (*Response[T], error) {
	return do[T](ctx, c, http.MethodPost, endpoint, bodyValue(body), opts)
}

// Put sends an HTTP PUT to the endpoint, with the same body and decoding
// semantics as Post.
func Put[T, U any](ctx context.Context, c *Client, endpoint string, body *U, opts *Options) (*Response[T], error) {
	return do[T](ctx, c, http.MethodPut, endpoint, bodyValue(body), opts)
}

// Patch sends an HTTP PATCH to the endpoint, with the same body and
// decoding semantics as Post.
func Patch[T, U any](ctx context.Context, c *Client, endpoint string, body *U, opts *Options) (*Response[T], error) {
	return do[T](ctx, c, http.MethodPatch, endpoint, bodyValue(body), opts)
}

// Delete sends an HTTP DELETE to the endpoint, with the same body and
// decoding semantics as Post.
func Delete[T, U any](ctx context.Context, c *Client, endpoint string, body *U, opts *Options) (*Response[T], error) {
	return do[T](ctx, c, http.MethodDelete, endpoint, bodyValue(body), opts)
}

func bodyValue[U any](body *U) any {
	if body == nil {
		return nil
	}
	return body
}

// do performs one request/response cycle: resolve configuration, encode
// the body, exchange over the transport, decode the response. There are no
// retries and no intermediate states; exactly one network call happens per
// invocation.
func do[T any](ctx context.Context, c *Client, method, endpoint string, body any, opts *Options) (*Response[T], error) {
	if opts == nil {
		opts = &Options{}
	}

	// Per-call override, else client default, else JSON.
	requestCT := opts.ContentType
	if requestCT == ContentTypeUnspecified {
		requestCT = resolveContentType(c.contentType)
	}

	requestID := c.newRequestID()

	target, err := c.buildURL(endpoint, opts.Params)
	if err != nil {
		return nil, err
	}
	parsedTarget, _ := url.Parse(target)
	label := endpointLabel(parsedTarget)

	var payload []byte
	if body != nil {
		codec, err := c.codecFor(requestCT)
		if err != nil {
			return nil, newCodecError("no codec for request body", err)
		}
		payload, err = codec.Marshal(body)
		if err != nil {
			c.metrics.RecordError(ErrorTypeCodec, method, label)
			if c.debugEnabled() && c.debug.LogCodec {
				c.logger.Warn("Request body encoding failed", "requestID", requestID, "contentType", requestCT.String(), "error", err.Error())
			}
			return nil, newCodecError("failed to encode request body", err)
		}
	}

	var remoteAddr string
	trace := &httptrace.ClientTrace{
		GotConn: func(info httptrace.GotConnInfo) {
			remoteAddr = info.Conn.RemoteAddr().String()
		},
	}
	ctx = httptrace.WithClientTrace(ctx, trace)

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, newConfigurationError("failed to build request", err)
	}

	req.Header = headerutil.Merge(c.headers, opts.Headers)
	if body != nil {
		req.Header.Set("Content-Type", requestCT.String())
	}
	if opts.Accept != ContentTypeUnspecified {
		req.Header.Set("Accept", opts.Accept.String())
	}

	resp, err := c.doRequest(req, requestID)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordError(ErrorTypeTransport, method, label)
		return nil, &ClientError{
			Type:      ErrorTypeTransport,
			Message:   "failed to read response body",
			Cause:     err,
			RequestID: requestID,
			Method:    method,
			URL:       target,
			Timestamp: time.Now(),
		}
	}

	result := &Response[T]{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		RawBody:    raw,
		RemoteAddr: remoteAddr,
	}

	if (opts.StrictStatus || c.strictStatus) && !result.IsSuccess() {
		c.metrics.RecordError(ErrorTypeHTTPStatus, method, label)
		return nil, &ClientError{
			Type:       ErrorTypeHTTPStatus,
			Message:    "HTTP error " + resp.Status,
			RequestID:  requestID,
			Method:     method,
			URL:        target,
			StatusCode: resp.StatusCode,
			Timestamp:  time.Now(),
		}
	}

	// Transport success and application outcome are distinct concerns:
	// non-2xx responses are returned undecoded, not as errors.
	if opts.SkipDecode || !result.IsSuccess() || isNoBody[T]() {
		return result, nil
	}

	if len(raw) == 0 {
		c.metrics.RecordError(ErrorTypeEmptyBody, method, label)
		return nil, &ClientError{
			Type:       ErrorTypeEmptyBody,
			Message:    "expected a response body",
			Cause:      ErrEmptyBody,
			RequestID:  requestID,
			Method:     method,
			URL:        target,
			StatusCode: resp.StatusCode,
			Timestamp:  time.Now(),
		}
	}

	responseCT := requestCT
	if parsed, ok := ParseContentType(resp.Header.Get("Content-Type")); ok {
		responseCT = parsed
	}

	codec, err := c.codecFor(responseCT)
	if err != nil {
		return nil, newCodecError("no codec for response body", err)
	}

	var decoded T
	if err := codec.Unmarshal(raw, &decoded); err != nil {
		c.metrics.RecordError(ErrorTypeCodec, method, label)
		if c.debugEnabled() && c.debug.LogCodec {
			c.logger.Warn("Response body decoding failed", "requestID", requestID, "contentType", responseCT.String(), "error", err.Error())
		}
		return nil, &ClientError{
			Type:       ErrorTypeCodec,
			Message:    "failed to decode response body",
			Cause:      err,
			RequestID:  requestID,
			Method:     method,
			URL:        target,
			StatusCode: resp.StatusCode,
			Timestamp:  time.Now(),
		}
	}
	result.Body = &decoded

	return result, nil
}

func isNoBody[T any]() bool {
	_, ok := any(new(T)).(*NoBody)
	return ok
}
