package marshaler

import (
	"reflect"

	"github.com/dogmatiq/serdeconv"
	"github.com/fxamacker/cbor/v2"
)

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error

	// Core Deterministic Encoding (RFC 8949 §4.2) so equal values always
	// produce identical bytes.
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("marshaler: CBOR encoder initialization failed: " + err.Error())
	}

	cborDec, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("marshaler: CBOR decoder initialization failed: " + err.Error())
	}
}

// NewCBOR returns a marshaler that converts values of type T to and from CBOR.
//
// Failures are reported as [serdeconv.Invalid] errors.
func NewCBOR[T any]() Marshaler[T] {
	return New(
		func(v T) ([]byte, error) {
			data, err := cborEnc.Marshal(v)
			if err != nil {
				return nil, serdeconv.NewError(serdeconv.Invalid, err)
			}
			return data, nil
		},
		func(data []byte) (T, error) {
			var v T
			if err := cborDec.Unmarshal(data, &v); err != nil {
				var zero T
				return zero, serdeconv.NewError(serdeconv.Invalid, err)
			}
			return v, nil
		},
	)
}
