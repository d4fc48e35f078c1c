package kcommon

import (
	"github.com/xiles84/kcommon/internal/errs"
)

// Errors returned by this package are classified with errors.Is against
// these values.
var (
	ErrInvalidArgument    = errs.ErrInvalidArgument
	ErrInvariantViolation = errs.ErrInvariantViolation
)
