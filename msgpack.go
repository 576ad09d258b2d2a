package serdeconv

import (
	"bytes"
	"io"
	"slices"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// structTag is the struct tag consulted for field names when a field has no
// "msgpack" tag, so that types tagged for JSON encode the same way in both
// formats.
const structTag = "json"

// FromMsgpackFile reads the MessagePack file at path and converts it to a
// value of type T.
func FromMsgpackFile[T any](path string) (T, error) {
	return track(fromFile(path, FromMsgpackReader[T]))
}

// FromMsgpackReader reads MessagePack data from r and converts it to a value
// of type T.
func FromMsgpackReader[T any](r io.Reader) (T, error) {
	return track(fromReader(r, decodeMsgpack[T]))
}

// FromMsgpackSlice converts MessagePack bytes to a value of type T.
func FromMsgpackSlice[T any](data []byte) (T, error) {
	return track(decodeMsgpack[T](data))
}

// ToMsgpackFile converts v to MessagePack and writes it to the file at path.
func ToMsgpackFile(v any, path string) error {
	return trackErr(toFile(path, func(w io.Writer) error {
		return ToMsgpackWriter(v, w)
	}))
}

// ToMsgpackWriter converts v to MessagePack and writes it to w.
func ToMsgpackWriter(v any, w io.Writer) error {
	data, err := encodeMsgpack(v)
	if err != nil {
		return trackErr(err)
	}
	return trackErr(writeAll(w, data))
}

// ToMsgpackVec converts v to MessagePack bytes.
//
// The entries of every map are written in key order, so encoding the same
// value always yields the same bytes.
func ToMsgpackVec(v any) ([]byte, error) {
	return track(encodeMsgpack(v))
}

func decodeMsgpack[T any](data []byte) (T, error) {
	var v T

	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag(structTag)

	if err := dec.Decode(&v); err != nil {
		var zero T
		return zero, invalid(err)
	}

	return v, nil
}

func encodeMsgpack(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag(structTag)

	if err := enc.Encode(v); err != nil {
		return nil, invalid(err)
	}

	data, err := sortMsgpackMaps(buf.Bytes())
	if err != nil {
		return nil, invalid(err)
	}

	return data, nil
}

// sortMsgpackMaps rewrites encoded MessagePack so that the entries of every
// map, at any depth, are ordered by key.
//
// The encoder only sorts map[string]string and map[string]any values, and
// iterates all other maps in random order.
func sortMsgpackMaps(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	dec := msgpack.NewDecoder(bytes.NewReader(data))

	if err := copyMsgpackValue(dec, &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func copyMsgpackValue(dec *msgpack.Decoder, buf *bytes.Buffer) error {
	c, err := dec.PeekCode()
	if err != nil {
		return err
	}

	switch {
	case msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32:
		return copyMsgpackMap(dec, buf)

	case msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return err
		}

		if err := msgpack.NewEncoder(buf).EncodeArrayLen(n); err != nil {
			return err
		}

		for range n {
			if err := copyMsgpackValue(dec, buf); err != nil {
				return err
			}
		}

		return nil

	default:
		raw, err := dec.DecodeRaw()
		if err != nil {
			return err
		}

		buf.Write(raw)
		return nil
	}
}

// msgpackEntry is an encoded map entry.
type msgpackEntry struct {
	Key, Value []byte

	// IsString is true if the key is a string, in which case Order is its
	// content. Otherwise Order is the encoded key.
	IsString bool
	Order    []byte
}

// copyMsgpackMap copies a map, ordering string keys by their content, followed
// by all other keys ordered by their encoded bytes.
func copyMsgpackMap(dec *msgpack.Decoder, buf *bytes.Buffer) error {
	n, err := dec.DecodeMapLen()
	if err != nil {
		return err
	}

	entries := make([]msgpackEntry, n)

	for i := range entries {
		var k, v bytes.Buffer

		if err := copyMsgpackValue(dec, &k); err != nil {
			return err
		}

		if err := copyMsgpackValue(dec, &v); err != nil {
			return err
		}

		e := &entries[i]
		e.Key = k.Bytes()
		e.Value = v.Bytes()
		e.Order = e.Key

		if msgpcode.IsString(e.Key[0]) {
			var s string
			if err := msgpack.Unmarshal(e.Key, &s); err != nil {
				return err
			}

			e.IsString = true
			e.Order = []byte(s)
		}
	}

	slices.SortStableFunc(
		entries,
		func(a, b msgpackEntry) int {
			if a.IsString != b.IsString {
				if a.IsString {
					return -1
				}
				return 1
			}
			return bytes.Compare(a.Order, b.Order)
		},
	)

	if err := msgpack.NewEncoder(buf).EncodeMapLen(n); err != nil {
		return err
	}

	for _, e := range entries {
		buf.Write(e.Key)
		buf.Write(e.Value)
	}

	return nil
}
