// Package marshaler packages serialization formats as values, so that code
// which stores or transmits values of type T can be parameterized by format.
package marshaler

// Marshaler converts values of type T to and from a binary representation.
type Marshaler[T any] interface {
	Marshal(T) ([]byte, error)
	Unmarshal([]byte) (T, error)
}

// New returns a [Marshaler] that converts values of type T using the given
// functions.
func New[T any](
	marshal func(T) ([]byte, error),
	unmarshal func([]byte) (T, error),
) Marshaler[T] {
	return funcs[T]{marshal, unmarshal}
}

// funcs is a [Marshaler] implemented by a pair of functions.
type funcs[T any] struct {
	marshal   func(T) ([]byte, error)
	unmarshal func([]byte) (T, error)
}

func (m funcs[T]) Marshal(v T) ([]byte, error)      { return m.marshal(v) }
func (m funcs[T]) Unmarshal(data []byte) (T, error) { return m.unmarshal(data) }
