package raxios

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
)

// Codec provides content-type aware marshaling for one serialization
// format. Register custom implementations with WithCodec.
type Codec interface {
	// ContentType returns the format this codec handles.
	ContentType() ContentType

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Marshaler abstracts the JSON encode step so callers can substitute an
// alternative implementation via WithMarshaler.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
}

// Unmarshaler abstracts the JSON decode step so callers can substitute an
// alternative implementation via WithUnmarshaler.
type Unmarshaler interface {
	Unmarshal(data []byte, v any) error
}

// jsonCodec encodes and decodes application/json bodies. With strict
// enabled, unknown fields in the input are rejected.
type jsonCodec struct {
	strict      bool
	marshaler   Marshaler
	unmarshaler Unmarshaler
}

func (c jsonCodec) ContentType() ContentType { return ContentTypeJSON }

func (c jsonCodec) Marshal(v any) ([]byte, error) {
	if c.marshaler != nil {
		return c.marshaler.Marshal(v)
	}
	return json.Marshal(v)
}

func (c jsonCodec) Unmarshal(data []byte, v any) error {
	if c.unmarshaler != nil {
		return c.unmarshaler.Unmarshal(data, v)
	}
	if c.strict {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	}
	return json.Unmarshal(data, v)
}

// xmlCodec encodes and decodes XML bodies, element per field. The same
// implementation backs text/xml and application/xml.
type xmlCodec struct {
	contentType ContentType
}

func (c xmlCodec) ContentType() ContentType { return c.contentType }

func (c xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

func (c xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}

// codecFor resolves the codec registered for a content type.
func (c *Client) codecFor(ct ContentType) (Codec, error) {
	if ct == ContentTypeUnspecified {
		ct = ContentTypeJSON
	}
	if codec, ok := c.codecs[ct]; ok {
		return codec, nil
	}
	return nil, fmt.Errorf("no codec registered for %q", ct.String())
}

// installDefaultCodecs fills codec slots not claimed via WithCodec.
func (c *Client) installDefaultCodecs() {
	if _, ok := c.codecs[ContentTypeJSON]; !ok {
		c.codecs[ContentTypeJSON] = jsonCodec{
			strict:      c.strictDecoding,
			marshaler:   c.marshaler,
			unmarshaler: c.unmarshaler,
		}
	}
	if _, ok := c.codecs[ContentTypeTextXML]; !ok {
		c.codecs[ContentTypeTextXML] = xmlCodec{contentType: ContentTypeTextXML}
	}
	if _, ok := c.codecs[ContentTypeApplicationXML]; !ok {
		c.codecs[ContentTypeApplicationXML] = xmlCodec{contentType: ContentTypeApplicationXML}
	}
	if _, ok := c.codecs[ContentTypeFormURLEncoded]; !ok {
		c.codecs[ContentTypeFormURLEncoded] = formCodec{}
	}
}
