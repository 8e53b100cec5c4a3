package headerutil

import (
	"net/http"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		wantErr bool
	}{
		{"nil map", nil, false},
		{"valid pair", map[string]string{"Authorization": "Bearer token"}, false},
		{"name with space", map[string]string{"Bad Name": "v"}, true},
		{"name with newline", map[string]string{"X-Bad\n": "v"}, true},
		{"value with newline", map[string]string{"X-Trace": "a\nb"}, true},
		{"empty value", map[string]string{"X-Empty": ""}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.headers)
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate(%v) error = %v, wantErr %v", tc.headers, err, tc.wantErr)
			}
		})
	}
}

func TestMergeOverridesWin(t *testing.T) {
	base := http.Header{}
	base.Set("Content-Type", "application/json")
	base.Set("X-Trace", "default")

	merged := Merge(base, map[string]string{"X-Trace": "per-call"})

	if got := merged.Get("X-Trace"); got != "per-call" {
		t.Errorf("Expected override to win, got %q", got)
	}
	if len(merged.Values("X-Trace")) != 1 {
		t.Errorf("Expected exactly one X-Trace value, got %v", merged.Values("X-Trace"))
	}
	if got := merged.Get("Content-Type"); got != "application/json" {
		t.Errorf("Expected base value preserved, got %q", got)
	}
}

func TestMergeDoesNotMutateBase(t *testing.T) {
	base := http.Header{}
	base.Set("X-Trace", "default")

	Merge(base, map[string]string{"X-Trace": "per-call", "X-New": "v"})

	if got := base.Get("X-Trace"); got != "default" {
		t.Errorf("Expected base unchanged, got %q", got)
	}
	if base.Get("X-New") != "" {
		t.Error("Expected new key not to leak into base")
	}
}

func TestMergeNilBase(t *testing.T) {
	merged := Merge(nil, map[string]string{"X-Trace": "v"})
	if got := merged.Get("X-Trace"); got != "v" {
		t.Errorf("Expected merged header from nil base, got %q", got)
	}
}

func TestFromMapCanonicalizes(t *testing.T) {
	h := FromMap(map[string]string{"content-type": "application/json"})
	if got := h.Get("Content-Type"); got != "application/json" {
		t.Errorf("Expected canonical key lookup to work, got %q", got)
	}
}

func TestToMapRoundTrip(t *testing.T) {
	h := http.Header{}
	h.Set("Accept", "application/json")
	h.Set("User-Agent", "test/1.0")

	m := ToMap(h)
	if m["Accept"] != "application/json" || m["User-Agent"] != "test/1.0" {
		t.Errorf("Unexpected map contents: %v", m)
	}
}
