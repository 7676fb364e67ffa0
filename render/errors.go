package render

import "errors"

// ErrUnknownFormat is returned when a format name is not registered.
var ErrUnknownFormat = errors.New("unknown output format")
