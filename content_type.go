package raxios

import "strings"

// ContentType selects the serialization format for request and response
// bodies and the value written to the Content-Type header.
type ContentType int

const (
	// ContentTypeUnspecified is the zero value. On Options it means "use
	// the client default"; on a client it resolves to ContentTypeJSON.
	ContentTypeUnspecified ContentType = iota
	// ContentTypeJSON serializes as application/json.
	ContentTypeJSON
	// ContentTypeTextXML serializes as text/xml.
	ContentTypeTextXML
	// ContentTypeApplicationXML serializes as application/xml.
	ContentTypeApplicationXML
	// ContentTypeFormURLEncoded serializes as application/x-www-form-urlencoded.
	ContentTypeFormURLEncoded
)

// String returns the MIME type for the content type.
func (ct ContentType) String() string {
	switch ct {
	case ContentTypeJSON:
		return "application/json"
	case ContentTypeTextXML:
		return "text/xml"
	case ContentTypeApplicationXML:
		return "application/xml"
	case ContentTypeFormURLEncoded:
		return "application/x-www-form-urlencoded"
	default:
		return ""
	}
}

// resolveContentType applies the JSON fallback for unspecified values.
func resolveContentType(ct ContentType) ContentType {
	if ct == ContentTypeUnspecified {
		return ContentTypeJSON
	}
	return ct
}

// ParseContentType maps a Content-Type header value to a ContentType.
// Parameters such as "; charset=utf-8" are ignored. Returns false for
// empty or unrecognized media types.
func ParseContentType(s string) (ContentType, bool) {
	mediaType := s
	if idx := strings.IndexByte(s, ';'); idx != -1 {
		mediaType = s[:idx]
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))

	switch mediaType {
	case "application/json":
		return ContentTypeJSON, true
	case "text/xml":
		return ContentTypeTextXML, true
	case "application/xml":
		return ContentTypeApplicationXML, true
	case "application/x-www-form-urlencoded":
		return ContentTypeFormURLEncoded, true
	default:
		return ContentTypeUnspecified, false
	}
}
