package raxios

import (
	"net/url"
	"strings"
)

// buildURL joins the client base URL with an endpoint using normalized
// single-slash joining and appends query parameters. No path traversal
// sanitization is performed; endpoints are the caller's responsibility.
func (c *Client) buildURL(endpoint string, params map[string]string) (string, error) {
	base := c.baseURL.String()

	switch {
	case strings.HasSuffix(base, "/") && strings.HasPrefix(endpoint, "/"):
		endpoint = endpoint[1:]
	case !strings.HasSuffix(base, "/") && !strings.HasPrefix(endpoint, "/") && endpoint != "":
		base += "/"
	}
	raw := base + endpoint

	if len(params) > 0 {
		values := url.Values{}
		for key, value := range params {
			values.Set(key, value)
		}
		sep := "?"
		if strings.Contains(raw, "?") {
			sep = "&"
		}
		raw += sep + values.Encode()
	}

	if _, err := url.Parse(raw); err != nil {
		return "", newConfigurationError("invalid request URL "+raw, err)
	}
	return raw, nil
}

// endpointLabel extracts a host+path label for metrics and debug logs.
func endpointLabel(u *url.URL) string {
	if u == nil {
		return "unknown"
	}

	host := u.Host
	path := u.Path

	var builder strings.Builder
	builder.WriteString(host)

	if path != "" && path != "/" {
		builder.WriteString(path)
	} else {
		builder.WriteByte('/')
	}

	return builder.String()
}
