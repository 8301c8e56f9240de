package store

import "errors"

// ErrStorage indicates the task log file could not be opened, written,
// or read. Individual malformed rows do not raise it; they are skipped
// and reported through the Observer.
var ErrStorage = errors.New("task storage error")
