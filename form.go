package raxios

import (
	"fmt"
	"net/url"
	"reflect"

	"github.com/gorilla/schema"
)

var (
	formEncoder = schema.NewEncoder()
	formDecoder = newFormDecoder()
)

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// formCodec encodes and decodes application/x-www-form-urlencoded bodies.
// Only flat key-value shapes are representable: structs with scalar
// fields, map types with scalar values, and url.Values. Nested structures
// fail with ErrUnsupportedShape.
type formCodec struct{}

func (formCodec) ContentType() ContentType { return ContentTypeFormURLEncoded }

func (formCodec) Marshal(v any) ([]byte, error) {
	if err := checkFlatShape(v); err != nil {
		return nil, err
	}

	switch src := v.(type) {
	case url.Values:
		return []byte(src.Encode()), nil
	case map[string]string:
		values := url.Values{}
		for k, val := range src {
			values.Set(k, val)
		}
		return []byte(values.Encode()), nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}

	values := url.Values{}
	switch rv.Kind() {
	case reflect.Struct:
		if err := formEncoder.Encode(rv.Interface(), values); err != nil {
			return nil, err
		}
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			values.Set(iter.Key().String(), fmt.Sprint(iter.Value().Interface()))
		}
	}
	return []byte(values.Encode()), nil
}

func (formCodec) Unmarshal(data []byte, v any) error {
	values, err := url.ParseQuery(string(data))
	if err != nil {
		return err
	}

	switch dst := v.(type) {
	case *url.Values:
		*dst = values
		return nil
	case *map[string]string:
		m := make(map[string]string, len(values))
		for k := range values {
			m[k] = values.Get(k)
		}
		*dst = m
		return nil
	}

	return formDecoder.Decode(v, values)
}

// checkFlatShape verifies that v is a flat key-value shape. url.Values is
// accepted as-is; structs may only contain scalar fields, pointers to
// scalars, or slices of scalars; maps require string keys and scalar
// values.
func checkFlatShape(v any) error {
	if v == nil {
		return fmt.Errorf("%w: nil value", ErrUnsupportedShape)
	}
	if _, ok := v.(url.Values); ok {
		return nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return fmt.Errorf("%w: nil pointer", ErrUnsupportedShape)
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		return checkFlatStruct(rv.Type())
	case reflect.Map:
		t := rv.Type()
		if t.Key().Kind() != reflect.String {
			return fmt.Errorf("%w: map keys must be strings, got %s", ErrUnsupportedShape, t.Key().Kind())
		}
		if t.Elem().Kind() == reflect.Interface {
			// Value types only known at runtime; inspect each entry.
			iter := rv.MapRange()
			for iter.Next() {
				elem := iter.Value().Elem()
				if !elem.IsValid() || !isScalarType(elem.Type()) {
					return fmt.Errorf("%w: map value for %q is not a scalar", ErrUnsupportedShape, iter.Key().String())
				}
			}
			return nil
		}
		if !isScalarType(t.Elem()) {
			return fmt.Errorf("%w: map values must be scalars, got %s", ErrUnsupportedShape, t.Elem().Kind())
		}
		return nil
	default:
		return fmt.Errorf("%w: %s cannot be form encoded", ErrUnsupportedShape, rv.Kind())
	}
}

func checkFlatStruct(t reflect.Type) error {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		ft := field.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Slice {
			ft = ft.Elem()
		}
		if !isScalarType(ft) {
			return fmt.Errorf("%w: field %q has nested type %s", ErrUnsupportedShape, field.Name, field.Type)
		}
	}
	return nil
}

func isScalarType(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	default:
		return false
	}
}
