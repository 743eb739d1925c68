package meminfo

import "errors"

var (
	// ErrMeminfoField is returned when /proc/meminfo lacks a required field.
	ErrMeminfoField = errors.New("missing field in meminfo")
)
