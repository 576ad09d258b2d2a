package serdeconv

import (
	"io"
	"os"
)

// fromReader reads the entirety of r and decodes it using decode.
func fromReader[T any](r io.Reader, decode func([]byte) (T, error)) (T, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		var zero T
		return zero, other(err)
	}
	return decode(data)
}

// fromFile opens the file at path and passes it to read.
func fromFile[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, other(err)
	}
	defer f.Close()

	return read(f)
}

// toFile creates or truncates the file at path and passes it to write.
//
// A failure to close the file is reported only if write succeeded.
func toFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return other(err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = other(cerr)
		}
	}()

	return write(f)
}

// writeAll writes data to w in its entirety.
func writeAll(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return other(err)
	}
	return nil
}
