package errorx

import (
	"fmt"

	"github.com/dogmatiq/serdeconv"
)

// Wrap adds context to a failed request to a remote endpoint and classifies it
// as a [serdeconv.Other] error.
//
// It is intended to be deferred. Errors that are already [*serdeconv.Error]
// values are left unchanged so that their kind is preserved.
func Wrap(err *error, format string, args ...any) {
	if err == nil {
		panic("err must not be nil")
	}

	if *err == nil {
		return
	}

	if _, ok := serdeconv.KindOf(*err); ok {
		return
	}

	*err = serdeconv.NewError(
		serdeconv.Other,
		fmt.Errorf(format+": %w", append(args, *err)...),
	)
}

// Invalid classifies err as a [serdeconv.Invalid] error, unless it is nil or
// has already been classified.
func Invalid(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := serdeconv.KindOf(err); ok {
		return err
	}

	return serdeconv.NewError(serdeconv.Invalid, err)
}
