// Package headerutil validates and merges HTTP header maps.
package headerutil

import (
	"fmt"
	"net/http"

	"golang.org/x/net/http/httpguts"
)

// Validate checks every name/value pair for valid HTTP header syntax:
// token names and visible-ASCII values. It returns an error describing the
// first offending pair.
func Validate(headers map[string]string) error {
	for name, value := range headers {
		if !httpguts.ValidHeaderFieldName(name) {
			return fmt.Errorf("header name %q is not a valid token", name)
		}
		if !httpguts.ValidHeaderFieldValue(value) {
			return fmt.Errorf("header %q has a non-visible-ASCII value %q", name, value)
		}
	}
	return nil
}

// Merge returns a copy of base with overrides applied on top. Override
// values replace defaults on key collision, so each key occurs exactly
// once in the result. The inputs are not mutated.
func Merge(base http.Header, overrides map[string]string) http.Header {
	merged := base.Clone()
	if merged == nil {
		merged = http.Header{}
	}
	for name, value := range overrides {
		merged.Set(name, value)
	}
	return merged
}

// FromMap converts a plain string map into an http.Header using canonical
// key formatting.
func FromMap(headers map[string]string) http.Header {
	h := make(http.Header, len(headers))
	for name, value := range headers {
		h.Set(name, value)
	}
	return h
}

// ToMap flattens an http.Header into a plain string map, keeping the first
// value of each key.
func ToMap(h http.Header) map[string]string {
	m := make(map[string]string, len(h))
	for name := range h {
		m[name] = h.Get(name)
	}
	return m
}
