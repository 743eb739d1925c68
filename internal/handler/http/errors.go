package http

import "errors"

// ErrNilStatusSource is returned by [NewHandler] when no source is given.
var ErrNilStatusSource = errors.New("status source is nil")
