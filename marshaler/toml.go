package marshaler

import "github.com/dogmatiq/serdeconv"

// NewTOML returns a marshaler that converts values of type T to and from TOML.
// T must be a struct or map type.
func NewTOML[T any]() Marshaler[T] {
	return New(
		func(v T) ([]byte, error) {
			return serdeconv.ToTOMLVec(v)
		},
		serdeconv.FromTOMLSlice[T],
	)
}
