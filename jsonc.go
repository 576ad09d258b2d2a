package serdeconv

import (
	"io"

	"github.com/tidwall/jsonc"
)

// FromJSONCFile reads the JSONC file at path and converts it to a value of
// type T.
//
// JSONC is JSON that may contain comments and trailing commas. They are
// removed before the input is decoded as JSON.
func FromJSONCFile[T any](path string) (T, error) {
	return track(fromFile(path, FromJSONCReader[T]))
}

// FromJSONCReader reads JSONC from r and converts it to a value of type T.
func FromJSONCReader[T any](r io.Reader) (T, error) {
	return track(fromReader(r, decodeJSONC[T]))
}

// FromJSONCStr converts a JSONC string to a value of type T.
func FromJSONCStr[T any](s string) (T, error) {
	return track(decodeJSONC[T]([]byte(s)))
}

// FromJSONCSlice converts JSONC bytes to a value of type T.
func FromJSONCSlice[T any](data []byte) (T, error) {
	return track(decodeJSONC[T](data))
}

func decodeJSONC[T any](data []byte) (T, error) {
	return decodeJSON[T](jsonc.ToJSON(data))
}
