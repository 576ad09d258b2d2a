package serdeconv_test

import (
	"errors"
	"testing"
	"unicode"

	. "github.com/dogmatiq/serdeconv"
	"pgregory.net/rapid"
)

type Foo struct {
	Bar string `json:"bar" toml:"bar"`
	Baz int    `json:"baz" toml:"baz"`
}

type Record struct {
	Name   string         `json:"name" toml:"name"`
	Count  int64          `json:"count" toml:"count"`
	Ratio  float64        `json:"ratio" toml:"ratio"`
	Active bool           `json:"active" toml:"active"`
	Tags   []string       `json:"tags" toml:"tags"`
	Limits map[string]int `json:"limits" toml:"limits"`
}

var (
	errRead  = errors.New("<read error>")
	errWrite = errors.New("<write error>")
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

// text generates strings that every supported format can represent.
func text() *rapid.Generator[string] {
	return rapid.StringOf(
		rapid.OneOf(
			rapid.RuneFrom(nil, unicode.Letter, unicode.Digit, unicode.Punct, unicode.Symbol),
			rapid.Just(' '),
		),
	)
}

func record() *rapid.Generator[Record] {
	return rapid.Custom(func(t *rapid.T) Record {
		return Record{
			Name:   text().Draw(t, "name"),
			Count:  rapid.Int64().Draw(t, "count"),
			Ratio:  rapid.Float64Range(-1e9, 1e9).Draw(t, "ratio"),
			Active: rapid.Bool().Draw(t, "active"),
			Tags:   rapid.SliceOf(text()).Draw(t, "tags"),
			Limits: rapid.MapOf(
				rapid.StringMatching(`[a-z][a-z0-9_]{0,15}`),
				rapid.Int(),
			).Draw(t, "limits"),
		}
	})
}

func expectKind(t *testing.T, err error, want ErrorKind) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected a %s error", want)
	}

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("unexpected error type: got %T, want %T", err, e)
	}

	if e.Kind != want {
		t.Fatalf("unexpected error kind: got %s, want %s (%s)", e.Kind, want, err)
	}
}
