// Package rec turns panics into errors.
package rec

import (
	"fmt"
	"runtime/debug"
)

func toError(r any) error {
	switch t := r.(type) {
	case error:
		return fmt.Errorf("recovered panic: %w\n%s", t, debug.Stack())
	default:
		return fmt.Errorf("recovered panic: %v\n%s", r, debug.Stack())
	}
}

// Error recovers a panic and assigns it to the provided error.
// It must be deferred directly, recover has no effect otherwise.
func Error(err *error) {
	if r := recover(); r != nil {
		*err = toError(r)
	}
}

// Wrap is like Error, but also wraps a returned error with format and a.
// The recovered panic or error is appended to a.
func Wrap(err *error, format string, a ...any) {
	if r := recover(); r != nil {
		*err = fmt.Errorf(format, append(a, toError(r))...)
	} else if *err != nil {
		*err = fmt.Errorf(format, append(a, *err)...)
	}
}
