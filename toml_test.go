package serdeconv_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/dogmatiq/dyad"
	. "github.com/dogmatiq/serdeconv"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func TestTOML(t *testing.T) {
	foo := Foo{Bar: "aaa", Baz: 123}

	const expect = "bar = \"aaa\"\nbaz = 123\n"

	t.Run("ToTOMLString", func(t *testing.T) {
		actual, err := ToTOMLString(foo)
		if err != nil {
			t.Fatal(err)
		}

		if actual != expect {
			t.Fatalf("unexpected TOML: got %q, want %q", actual, expect)
		}
	})

	t.Run("ToTOMLVec", func(t *testing.T) {
		actual, err := ToTOMLVec(foo)
		if err != nil {
			t.Fatal(err)
		}

		if string(actual) != expect {
			t.Fatalf("unexpected TOML: got %q, want %q", actual, expect)
		}
	})

	t.Run("ToTOMLWriter", func(t *testing.T) {
		var buf bytes.Buffer

		if err := ToTOMLWriter(foo, &buf); err != nil {
			t.Fatal(err)
		}

		if buf.String() != expect {
			t.Fatalf("unexpected TOML: got %q, want %q", buf.String(), expect)
		}
	})

	t.Run("it decodes from each endpoint", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "foo.toml")
		if err := ToTOMLFile(foo, path); err != nil {
			t.Fatal(err)
		}

		decoders := map[string]func() (Foo, error){
			"FromTOMLStr":    func() (Foo, error) { return FromTOMLStr[Foo]("\nbar = \"aaa\"\nbaz = 123\n") },
			"FromTOMLSlice":  func() (Foo, error) { return FromTOMLSlice[Foo]([]byte(expect)) },
			"FromTOMLReader": func() (Foo, error) { return FromTOMLReader[Foo](strings.NewReader(expect)) },
			"FromTOMLFile":   func() (Foo, error) { return FromTOMLFile[Foo](path) },
		}

		for name, decode := range decoders {
			t.Run(name, func(t *testing.T) {
				actual, err := decode()
				if err != nil {
					t.Fatal(err)
				}

				if diff := cmp.Diff(foo, actual); diff != "" {
					t.Fatal(diff)
				}
			})
		}
	})

	t.Run("it converts to and from generic tables", func(t *testing.T) {
		table, err := ToTOMLValue(foo)
		if err != nil {
			t.Fatal(err)
		}

		want := map[string]any{
			"bar": "aaa",
			"baz": int64(123),
		}

		if diff := cmp.Diff(want, table); diff != "" {
			t.Fatal(diff)
		}

		actual, err := FromTOMLValue[Foo](table)
		if err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff(foo, actual); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("it fails with an invalid error", func(t *testing.T) {
		cases := []struct {
			Name string
			Err  func() error
		}{
			{
				Name: "truncated input",
				Err: func() error {
					_, err := FromTOMLStr[Foo]("bar = ")
					return err
				},
			},
			{
				Name: "type mismatch",
				Err: func() error {
					_, err := FromTOMLStr[Foo]("bar = 1")
					return err
				},
			},
			{
				Name: "invalid UTF-8",
				Err: func() error {
					_, err := FromTOMLSlice[Foo]([]byte{'b', 'a', 'r', ' ', '=', ' ', '"', 0xff, '"'})
					return err
				},
			},
			{
				Name: "invalid UTF-8 reader content",
				Err: func() error {
					_, err := FromTOMLReader[Foo](bytes.NewReader([]byte{'b', 'a', 'r', ' ', '=', ' ', '"', 0xff, '"'}))
					return err
				},
			},
			{
				Name: "malformed reader content",
				Err: func() error {
					_, err := FromTOMLReader[Foo](strings.NewReader("[unterminated"))
					return err
				},
			},
			{
				Name: "top-level value is not a table",
				Err: func() error {
					_, err := ToTOMLString(123)
					return err
				},
			},
			{
				Name: "unsupported value",
				Err: func() error {
					_, err := ToTOMLVec(map[string]any{"ch": make(chan int)})
					return err
				},
			},
			{
				Name: "unsupported value in generic table",
				Err: func() error {
					_, err := FromTOMLValue[Foo](map[string]any{"bar": make(chan int)})
					return err
				},
			},
			{
				Name: "mismatched generic table",
				Err: func() error {
					_, err := FromTOMLValue[Foo](map[string]any{"baz": "not a number"})
					return err
				},
			},
			{
				Name: "unsupported value converted to a generic table",
				Err: func() error {
					_, err := ToTOMLValue(123)
					return err
				},
			},
		}

		for _, c := range cases {
			t.Run(c.Name, func(t *testing.T) {
				expectKind(t, c.Err(), Invalid)
			})
		}
	})

	t.Run("it only encodes tables", func(t *testing.T) {
		n := 123
		values := map[string]any{
			"integer":             123,
			"string":              "aaa",
			"slice":               []int{1, 2, 3},
			"pointer to integer":  &n,
			"nil pointer":         (*Foo)(nil),
			"text marshaler":      time.Unix(0, 0).UTC(),
			"pointer to time":     &time.Time{},
			"nil value":           nil,
			"slice of tables":     []Foo{foo},
			"array of characters": [3]byte{'a', 'b', 'c'},
		}

		dir := t.TempDir()

		encoders := map[string]func(any) error{
			"ToTOMLString": func(v any) error {
				_, err := ToTOMLString(v)
				return err
			},
			"ToTOMLVec": func(v any) error {
				_, err := ToTOMLVec(v)
				return err
			},
			"ToTOMLWriter": func(v any) error {
				return ToTOMLWriter(v, &bytes.Buffer{})
			},
			"ToTOMLFile": func(v any) error {
				return ToTOMLFile(v, filepath.Join(dir, "value.toml"))
			},
			"ToTOMLValue": func(v any) error {
				_, err := ToTOMLValue(v)
				return err
			},
		}

		for encName, encode := range encoders {
			t.Run(encName, func(t *testing.T) {
				for name, v := range values {
					t.Run(name, func(t *testing.T) {
						expectKind(t, encode(v), Invalid)
					})
				}

				t.Run("pointer to struct", func(t *testing.T) {
					if err := encode(&foo); err != nil {
						t.Fatal(err)
					}
				})

				t.Run("map", func(t *testing.T) {
					if err := encode(map[string]int{"baz": 123}); err != nil {
						t.Fatal(err)
					}
				})
			})
		}
	})

	t.Run("it fails with an other error", func(t *testing.T) {
		_, err := FromTOMLReader[Foo](iotest.ErrReader(errRead))
		expectKind(t, err, Other)

		if !errors.Is(err, errRead) {
			t.Fatalf("expected read error to be the cause, got %s", err)
		}

		err = ToTOMLWriter(foo, failingWriter{})
		expectKind(t, err, Other)

		if !errors.Is(err, errWrite) {
			t.Fatalf("expected write error to be the cause, got %s", err)
		}
	})

	t.Run("it round-trips arbitrary values", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			want := record().Draw(t, "record")
			snapshot := dyad.Clone(want)

			data, err := ToTOMLString(want)
			if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(snapshot, want); diff != "" {
				t.Fatalf("encoding modified the value: %s", diff)
			}

			got, err := FromTOMLStr[Record](data)
			if err != nil {
				t.Fatalf("%s\n%s", err, data)
			}

			if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Fatal(diff)
			}

			again, err := ToTOMLString(want)
			if err != nil {
				t.Fatal(err)
			}

			if again != data {
				t.Fatalf("encoding is not stable: %q != %q", data, again)
			}
		})
	})
}
