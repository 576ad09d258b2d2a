package serdeconv

import "io"

// Encodable provides method-call syntax for converting a value of type T to
// each of the supported formats.
//
// Each method is equivalent to the free function of the same name.
type Encodable[T any] struct {
	v T
}

// Of returns an [Encodable] for v.
//
//	s, err := serdeconv.Of(foo).ToJSONString()
func Of[T any](v T) Encodable[T] {
	return Encodable[T]{v}
}

// Value returns the value being converted.
func (e Encodable[T]) Value() T { return e.v }

// ToJSONFile is equivalent to [ToJSONFile].
func (e Encodable[T]) ToJSONFile(path string) error { return ToJSONFile(e.v, path) }

// ToJSONWriter is equivalent to [ToJSONWriter].
func (e Encodable[T]) ToJSONWriter(w io.Writer) error { return ToJSONWriter(e.v, w) }

// ToJSONWriterPretty is equivalent to [ToJSONWriterPretty].
func (e Encodable[T]) ToJSONWriterPretty(w io.Writer) error { return ToJSONWriterPretty(e.v, w) }

// ToJSONString is equivalent to [ToJSONString].
func (e Encodable[T]) ToJSONString() (string, error) { return ToJSONString(e.v) }

// ToJSONStringPretty is equivalent to [ToJSONStringPretty].
func (e Encodable[T]) ToJSONStringPretty() (string, error) { return ToJSONStringPretty(e.v) }

// ToJSONVec is equivalent to [ToJSONVec].
func (e Encodable[T]) ToJSONVec() ([]byte, error) { return ToJSONVec(e.v) }

// ToTOMLFile is equivalent to [ToTOMLFile].
func (e Encodable[T]) ToTOMLFile(path string) error { return ToTOMLFile(e.v, path) }

// ToTOMLWriter is equivalent to [ToTOMLWriter].
func (e Encodable[T]) ToTOMLWriter(w io.Writer) error { return ToTOMLWriter(e.v, w) }

// ToTOMLString is equivalent to [ToTOMLString].
func (e Encodable[T]) ToTOMLString() (string, error) { return ToTOMLString(e.v) }

// ToTOMLVec is equivalent to [ToTOMLVec].
func (e Encodable[T]) ToTOMLVec() ([]byte, error) { return ToTOMLVec(e.v) }

// ToTOMLValue is equivalent to [ToTOMLValue].
func (e Encodable[T]) ToTOMLValue() (map[string]any, error) { return ToTOMLValue(e.v) }

// ToMsgpackFile is equivalent to [ToMsgpackFile].
func (e Encodable[T]) ToMsgpackFile(path string) error { return ToMsgpackFile(e.v, path) }

// ToMsgpackWriter is equivalent to [ToMsgpackWriter].
func (e Encodable[T]) ToMsgpackWriter(w io.Writer) error { return ToMsgpackWriter(e.v, w) }

// ToMsgpackVec is equivalent to [ToMsgpackVec].
func (e Encodable[T]) ToMsgpackVec() ([]byte, error) { return ToMsgpackVec(e.v) }

// Decodable provides method-call syntax for converting each of the supported
// formats to a value of type T.
//
// Each method is equivalent to the free function of the same name.
type Decodable[T any] struct{}

// As returns a [Decodable] that produces values of type T.
//
//	foo, err := serdeconv.As[Foo]().FromTOMLFile("foo.toml")
func As[T any]() Decodable[T] {
	return Decodable[T]{}
}

// FromJSONFile is equivalent to [FromJSONFile].
func (Decodable[T]) FromJSONFile(path string) (T, error) { return FromJSONFile[T](path) }

// FromJSONReader is equivalent to [FromJSONReader].
func (Decodable[T]) FromJSONReader(r io.Reader) (T, error) { return FromJSONReader[T](r) }

// FromJSONStr is equivalent to [FromJSONStr].
func (Decodable[T]) FromJSONStr(s string) (T, error) { return FromJSONStr[T](s) }

// FromJSONSlice is equivalent to [FromJSONSlice].
func (Decodable[T]) FromJSONSlice(data []byte) (T, error) { return FromJSONSlice[T](data) }

// FromTOMLFile is equivalent to [FromTOMLFile].
func (Decodable[T]) FromTOMLFile(path string) (T, error) { return FromTOMLFile[T](path) }

// FromTOMLReader is equivalent to [FromTOMLReader].
func (Decodable[T]) FromTOMLReader(r io.Reader) (T, error) { return FromTOMLReader[T](r) }

// FromTOMLStr is equivalent to [FromTOMLStr].
func (Decodable[T]) FromTOMLStr(s string) (T, error) { return FromTOMLStr[T](s) }

// FromTOMLSlice is equivalent to [FromTOMLSlice].
func (Decodable[T]) FromTOMLSlice(data []byte) (T, error) { return FromTOMLSlice[T](data) }

// FromTOMLValue is equivalent to [FromTOMLValue].
func (Decodable[T]) FromTOMLValue(table map[string]any) (T, error) { return FromTOMLValue[T](table) }

// FromMsgpackFile is equivalent to [FromMsgpackFile].
func (Decodable[T]) FromMsgpackFile(path string) (T, error) { return FromMsgpackFile[T](path) }

// FromMsgpackReader is equivalent to [FromMsgpackReader].
func (Decodable[T]) FromMsgpackReader(r io.Reader) (T, error) { return FromMsgpackReader[T](r) }

// FromMsgpackSlice is equivalent to [FromMsgpackSlice].
func (Decodable[T]) FromMsgpackSlice(data []byte) (T, error) { return FromMsgpackSlice[T](data) }
