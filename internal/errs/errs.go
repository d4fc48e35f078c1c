// Package errs defines the error classes shared by the kcommon packages.
package errs

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned for malformed input to a public entry point.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvariantViolation marks an internal logic defect, such as a symbol
	// outside its reserved range or a range-minimum query with no result.
	ErrInvariantViolation = errors.New("invariant violation")
)

// InvalidArgumentf wraps ErrInvalidArgument with a formatted message and a stack.
func InvalidArgumentf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// Invariantf wraps ErrInvariantViolation with a formatted message and a stack.
func Invariantf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvariantViolation, format, args...)
}
