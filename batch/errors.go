package batch

import "errors"

// ErrNotRegularFile is returned when the path is a directory or device.
var ErrNotRegularFile = errors.New("not a regular file")
