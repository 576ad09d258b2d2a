package marshaler

import (
	"fmt"

	"github.com/dogmatiq/serdeconv"
	"gopkg.in/yaml.v3"
)

// NewYAML returns a marshaler that converts values of type T to and from YAML.
//
// Failures are reported as [serdeconv.Invalid] errors.
func NewYAML[T any]() Marshaler[T] {
	return New(
		func(v T) (data []byte, err error) {
			// yaml.v3 panics on some unsupported values, such as channels.
			defer func() {
				if r := recover(); r != nil {
					data = nil
					err = serdeconv.NewError(serdeconv.Invalid, fmt.Errorf("%v", r))
				}
			}()

			data, err = yaml.Marshal(v)
			if err != nil {
				return nil, serdeconv.NewError(serdeconv.Invalid, err)
			}
			return data, nil
		},
		func(data []byte) (T, error) {
			var v T
			if err := yaml.Unmarshal(data, &v); err != nil {
				var zero T
				return zero, serdeconv.NewError(serdeconv.Invalid, err)
			}
			return v, nil
		},
	)
}
