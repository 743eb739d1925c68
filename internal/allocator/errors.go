package allocator

import "errors"

var (
	// ErrUnknownMode is returned by New for an unsupported allocation mode.
	ErrUnknownMode = errors.New("unknown allocation mode")
	// ErrZeroTotal is returned when total memory is reported as zero.
	ErrZeroTotal = errors.New("total memory is zero")
)
