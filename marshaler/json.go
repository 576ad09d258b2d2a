package marshaler

import "github.com/dogmatiq/serdeconv"

// NewJSON returns a marshaler that converts values of type T to and from
// compact JSON.
//
// Failures are reported as [*serdeconv.Error] values.
func NewJSON[T any]() Marshaler[T] {
	return New(
		func(v T) ([]byte, error) {
			return serdeconv.ToJSONVec(v)
		},
		serdeconv.FromJSONSlice[T],
	)
}

// NewJSONC returns a marshaler that produces compact JSON and accepts JSON
// with comments and trailing commas.
func NewJSONC[T any]() Marshaler[T] {
	return New(
		func(v T) ([]byte, error) {
			return serdeconv.ToJSONVec(v)
		},
		serdeconv.FromJSONCSlice[T],
	)
}
