package marshaler

import (
	"github.com/dogmatiq/serdeconv"
	"google.golang.org/protobuf/proto"
)

// NewProto returns a marshaler that converts Protocol Buffers messages.
//
// Failures are reported as [serdeconv.Invalid] errors.
func NewProto[
	T interface {
		proto.Message
		*S
	},
	S any,
]() Marshaler[T] {
	return New(
		func(m T) ([]byte, error) {
			data, err := proto.MarshalOptions{Deterministic: true}.Marshal(m)
			if err != nil {
				return nil, serdeconv.NewError(serdeconv.Invalid, err)
			}
			return data, nil
		},
		func(data []byte) (T, error) {
			var m T = new(S)
			if err := proto.Unmarshal(data, m); err != nil {
				return nil, serdeconv.NewError(serdeconv.Invalid, err)
			}
			return m, nil
		},
	)
}
