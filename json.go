package serdeconv

import (
	"bytes"
	"encoding/json"
	"io"
	"unicode/utf8"
)

// FromJSONFile reads the JSON file at path and converts it to a value of type T.
func FromJSONFile[T any](path string) (T, error) {
	return track(fromFile(path, FromJSONReader[T]))
}

// FromJSONReader reads JSON from r and converts it to a value of type T.
func FromJSONReader[T any](r io.Reader) (T, error) {
	return track(fromReader(r, decodeJSON[T]))
}

// FromJSONStr converts a JSON string to a value of type T.
func FromJSONStr[T any](s string) (T, error) {
	return track(decodeJSON[T]([]byte(s)))
}

// FromJSONSlice converts JSON bytes to a value of type T.
func FromJSONSlice[T any](data []byte) (T, error) {
	return track(decodeJSON[T](data))
}

// ToJSONFile converts v to JSON and writes it to the file at path.
func ToJSONFile(v any, path string) error {
	return trackErr(toFile(path, func(w io.Writer) error {
		return ToJSONWriter(v, w)
	}))
}

// ToJSONFilePretty converts v to indented JSON and writes it to the file at
// path.
func ToJSONFilePretty(v any, path string) error {
	return trackErr(toFile(path, func(w io.Writer) error {
		return ToJSONWriterPretty(v, w)
	}))
}

// ToJSONWriter converts v to JSON and writes it to w.
func ToJSONWriter(v any, w io.Writer) error {
	data, err := encodeJSON(v, false)
	if err != nil {
		return trackErr(err)
	}
	return trackErr(writeAll(w, data))
}

// ToJSONWriterPretty converts v to indented JSON and writes it to w.
func ToJSONWriterPretty(v any, w io.Writer) error {
	data, err := encodeJSON(v, true)
	if err != nil {
		return trackErr(err)
	}
	return trackErr(writeAll(w, data))
}

// ToJSONString converts v to a JSON string.
func ToJSONString(v any) (string, error) {
	data, err := encodeJSON(v, false)
	return track(string(data), err)
}

// ToJSONStringPretty converts v to an indented JSON string.
func ToJSONStringPretty(v any) (string, error) {
	data, err := encodeJSON(v, true)
	return track(string(data), err)
}

// ToJSONVec converts v to JSON bytes.
func ToJSONVec(v any) ([]byte, error) {
	return track(encodeJSON(v, false))
}

// ToJSONVecPretty converts v to indented JSON bytes.
func ToJSONVecPretty(v any) ([]byte, error) {
	return track(encodeJSON(v, true))
}

func decodeJSON[T any](data []byte) (T, error) {
	var v T

	if !utf8.Valid(data) {
		return v, invalid(errInvalidUTF8)
	}

	if err := json.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, invalid(err)
	}

	return v, nil
}

// encodeJSON returns the JSON representation of v.
//
// HTML characters are not escaped and there is no trailing newline.
func encodeJSON(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(v); err != nil {
		return nil, invalid(err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
