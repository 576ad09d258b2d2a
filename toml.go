package serdeconv

import (
	"bytes"
	"encoding"
	"fmt"
	"io"
	"reflect"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

// FromTOMLFile reads the TOML file at path and converts it to a value of type T.
func FromTOMLFile[T any](path string) (T, error) {
	return track(fromFile(path, FromTOMLReader[T]))
}

// FromTOMLReader reads TOML from r and converts it to a value of type T.
func FromTOMLReader[T any](r io.Reader) (T, error) {
	return track(fromReader(r, decodeTOML[T]))
}

// FromTOMLStr converts a TOML string to a value of type T.
//
// For example, given:
//
//	type Foo struct {
//		Bar string `toml:"bar"`
//		Baz int    `toml:"baz"`
//	}
//
// FromTOMLStr[Foo]("bar = \"aaa\"\nbaz = 123\n") returns
// Foo{Bar: "aaa", Baz: 123}.
func FromTOMLStr[T any](s string) (T, error) {
	return track(decodeTOML[T]([]byte(s)))
}

// FromTOMLSlice converts TOML bytes to a value of type T.
//
// It fails with an [Invalid] error if data is not valid UTF-8.
func FromTOMLSlice[T any](data []byte) (T, error) {
	return track(decodeTOML[T](data))
}

// FromTOMLValue converts a generic TOML table, such as one produced by
// [ToTOMLValue], to a value of type T.
func FromTOMLValue[T any](table map[string]any) (T, error) {
	data, err := encodeTOML(table)
	if err != nil {
		var zero T
		return track(zero, err)
	}
	return track(decodeTOML[T](data))
}

// ToTOMLFile converts v to TOML and writes it to the file at path.
func ToTOMLFile(v any, path string) error {
	return trackErr(toFile(path, func(w io.Writer) error {
		return ToTOMLWriter(v, w)
	}))
}

// ToTOMLWriter converts v to TOML and writes it to w.
//
// v is encoded in full before anything is written to w.
func ToTOMLWriter(v any, w io.Writer) error {
	data, err := encodeTOML(v)
	if err != nil {
		return trackErr(err)
	}
	return trackErr(writeAll(w, data))
}

// ToTOMLString converts v to a TOML string.
//
// v must be a struct or a map with string keys; TOML documents are tables.
func ToTOMLString(v any) (string, error) {
	data, err := encodeTOML(v)
	return track(string(data), err)
}

// ToTOMLVec converts v to TOML bytes.
func ToTOMLVec(v any) ([]byte, error) {
	return track(encodeTOML(v))
}

// ToTOMLValue converts v to a generic TOML table.
//
// Integers become int64, floats become float64, nested tables become
// map[string]any and arrays become []any.
func ToTOMLValue(v any) (map[string]any, error) {
	data, err := encodeTOML(v)
	if err != nil {
		return track[map[string]any](nil, err)
	}
	return track(decodeTOML[map[string]any](data))
}

func decodeTOML[T any](data []byte) (T, error) {
	var v T

	if !utf8.Valid(data) {
		return v, invalid(errInvalidUTF8)
	}

	if err := toml.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, invalid(err)
	}

	return v, nil
}

func encodeTOML(v any) ([]byte, error) {
	if !isTOMLTable(v) {
		return nil, invalid(fmt.Errorf("toml: top-level value must be a table, got %T", v))
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, invalid(err)
	}
	return buf.Bytes(), nil
}

// isTOMLTable returns true if v encodes as a TOML table. The encoder writes
// other values as bare scalars or arrays, which are not valid documents.
func isTOMLTable(v any) bool {
	switch v.(type) {
	case toml.Marshaler, encoding.TextMarshaler:
		return false
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()

		if rv.CanInterface() {
			switch rv.Interface().(type) {
			case toml.Marshaler, encoding.TextMarshaler:
				return false
			}
		}
	}

	switch rv.Kind() {
	case reflect.Struct, reflect.Map:
		return true
	default:
		return false
	}
}
