package marshaler

import "github.com/dogmatiq/serdeconv"

// NewMsgpack returns a marshaler that converts values of type T to and from
// MessagePack.
func NewMsgpack[T any]() Marshaler[T] {
	return New(
		func(v T) ([]byte, error) {
			return serdeconv.ToMsgpackVec(v)
		},
		serdeconv.FromMsgpackSlice[T],
	)
}
