package config

import "errors"

// Validation errors returned by [Resolve] when configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidFillConfigs indicates a missing or malformed size, mode or
	// duration.
	ErrInvalidFillConfigs = errors.New("invalid fill configuration")
	// ErrInvalidMemoryConfigs indicates empty cgroup or proc roots.
	ErrInvalidMemoryConfigs = errors.New("invalid memory configuration")
	// ErrInvalidWorkerConfigs indicates non-positive loop intervals or chunk
	// timeouts.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs indicates a malformed status address or a
	// non-positive shutdown timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLogConfigs indicates an unknown log level or format.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrTooManyArguments is returned for more than three positional
	// arguments.
	ErrTooManyArguments = errors.New("too many arguments")
	// ErrUnsupportedFileFormat is returned for config files that are neither
	// JSON nor YAML.
	ErrUnsupportedFileFormat = errors.New("unsupported config file format")
)
