package serdeconv_test

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/dogmatiq/serdeconv"
)

func TestErrorKind_String(t *testing.T) {
	cases := []struct {
		Kind     ErrorKind
		Expected string
	}{
		{Invalid, "invalid"},
		{Other, "other"},
		{ErrorKind(42), "ErrorKind(42)"},
	}

	for _, c := range cases {
		if actual := c.Kind.String(); actual != c.Expected {
			t.Fatalf("unexpected string: got %q, want %q", actual, c.Expected)
		}
	}
}

func TestError(t *testing.T) {
	cause := errors.New("<cause>")

	t.Run("it describes the kind and the cause", func(t *testing.T) {
		cases := []struct {
			Name     string
			Err      *Error
			Expected string
		}{
			{
				Name:     "invalid",
				Err:      NewError(Invalid, cause),
				Expected: "invalid input: <cause>",
			},
			{
				Name:     "other",
				Err:      NewError(Other, cause),
				Expected: "i/o failure: <cause>",
			},
			{
				Name:     "no cause",
				Err:      NewError(Other, nil),
				Expected: "i/o failure",
			},
		}

		for _, c := range cases {
			t.Run(c.Name, func(t *testing.T) {
				if actual := c.Err.Error(); actual != c.Expected {
					t.Fatalf("unexpected message: got %q, want %q", actual, c.Expected)
				}
			})
		}
	})

	t.Run("it preserves the cause", func(t *testing.T) {
		err := NewError(Invalid, cause)

		if !errors.Is(err, cause) {
			t.Fatal("expected the cause to be reachable through errors.Is()")
		}

		if errors.Unwrap(err) != cause {
			t.Fatal("expected Unwrap() to return the cause")
		}
	})

	t.Run("it records the location at which it was created", func(t *testing.T) {
		err := NewError(Invalid, cause)

		if len(err.History) != 1 {
			t.Fatalf("unexpected history length: got %d, want 1", len(err.History))
		}

		if len(err.StackTrace()) != 1 {
			t.Fatal("expected StackTrace() to return the history")
		}

		actual := fmt.Sprintf("%+v", err)
		if !strings.HasPrefix(actual, "invalid input: <cause> (kind: invalid)\n") {
			t.Fatalf("unexpected detailed format: %q", actual)
		}

		if !strings.Contains(actual, "error_test.go:") {
			t.Fatalf("expected detailed format to include the call site: %q", actual)
		}
	})

	t.Run("it formats without history by default", func(t *testing.T) {
		err := NewError(Other, cause)

		if actual := fmt.Sprintf("%v", err); actual != "i/o failure: <cause>" {
			t.Fatalf("unexpected %%v format: %q", actual)
		}

		if actual := fmt.Sprintf("%q", err); actual != `"i/o failure: <cause>"` {
			t.Fatalf("unexpected %%q format: %s", actual)
		}
	})

	t.Run("it extends its history as it propagates", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "value.json")

		if err := ToJSONFile("{", path); err != nil {
			t.Fatal(err)
		}

		_, err := FromJSONFile[Foo](path)
		expectKind(t, err, Invalid)

		var e *Error
		errors.As(err, &e)

		// decode, reader, file
		if len(e.History) != 3 {
			t.Fatalf("unexpected history length: got %d, want 3\n%+v", len(e.History), e)
		}

		_, err = FromJSONFile[Foo](filepath.Join(dir, "missing.json"))
		expectKind(t, err, Other)

		errors.As(err, &e)

		// open, file
		if len(e.History) != 2 {
			t.Fatalf("unexpected history length: got %d, want 2\n%+v", len(e.History), e)
		}
	})
}

func TestKindOf(t *testing.T) {
	cause := errors.New("<cause>")

	cases := []struct {
		Name      string
		Err       error
		Kind      ErrorKind
		OK        bool
		IsInvalid bool
		IsOther   bool
	}{
		{
			Name:      "invalid",
			Err:       NewError(Invalid, cause),
			Kind:      Invalid,
			OK:        true,
			IsInvalid: true,
		},
		{
			Name:    "other",
			Err:     NewError(Other, cause),
			Kind:    Other,
			OK:      true,
			IsOther: true,
		},
		{
			Name:      "wrapped",
			Err:       fmt.Errorf("<context>: %w", NewError(Invalid, cause)),
			Kind:      Invalid,
			OK:        true,
			IsInvalid: true,
		},
		{
			Name: "unrecognized error",
			Err:  cause,
		},
		{
			Name: "nil error",
			Err:  nil,
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			kind, ok := KindOf(c.Err)
			if kind != c.Kind || ok != c.OK {
				t.Fatalf("unexpected result: got (%s, %t), want (%s, %t)", kind, ok, c.Kind, c.OK)
			}

			if actual := IsInvalid(c.Err); actual != c.IsInvalid {
				t.Fatalf("unexpected IsInvalid() result: got %t, want %t", actual, c.IsInvalid)
			}

			if actual := IsOther(c.Err); actual != c.IsOther {
				t.Fatalf("unexpected IsOther() result: got %t, want %t", actual, c.IsOther)
			}
		})
	}
}

func TestFileErrors(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing")
	unwritable := filepath.Join(dir, "no-such-dir", "value")

	readers := map[string]func(string) error{
		"FromJSONFile": func(p string) error {
			_, err := FromJSONFile[Foo](p)
			return err
		},
		"FromJSONCFile": func(p string) error {
			_, err := FromJSONCFile[Foo](p)
			return err
		},
		"FromTOMLFile": func(p string) error {
			_, err := FromTOMLFile[Foo](p)
			return err
		},
		"FromMsgpackFile": func(p string) error {
			_, err := FromMsgpackFile[Foo](p)
			return err
		},
	}

	for name, read := range readers {
		t.Run(name, func(t *testing.T) {
			err := read(missing)
			expectKind(t, err, Other)

			if !errors.Is(err, fs.ErrNotExist) {
				t.Fatalf("expected error to be caused by fs.ErrNotExist, got %s", err)
			}
		})
	}

	writers := map[string]func(any, string) error{
		"ToJSONFile":       ToJSONFile,
		"ToJSONFilePretty": ToJSONFilePretty,
		"ToTOMLFile":       ToTOMLFile,
		"ToMsgpackFile":    ToMsgpackFile,
	}

	for name, write := range writers {
		t.Run(name, func(t *testing.T) {
			err := write(Foo{"aaa", 123}, unwritable)
			expectKind(t, err, Other)
		})
	}
}
