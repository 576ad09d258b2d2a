package marshaler

var (
	// String converts the built-in string type to and from its UTF-8 bytes.
	String = New(
		func(v string) ([]byte, error) {
			return []byte(v), nil
		},
		func(data []byte) (string, error) {
			return string(data), nil
		},
	)

	// Bool converts the built-in bool type. true is represented by a single
	// non-zero byte and false by an empty slice.
	Bool = New(
		func(v bool) ([]byte, error) {
			if v {
				return []byte{1}, nil
			}
			return nil, nil
		},
		func(data []byte) (bool, error) {
			return len(data) > 0, nil
		},
	)
)
