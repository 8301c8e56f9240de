package store

import (
	"fmt"
	"io"
)

// Observer receives events about rows the store skipped while reading.
type Observer interface {
	// OnRowSkipped reports a malformed row. line is 1-based within the
	// file, header included.
	OnRowSkipped(line int, reason error)
}

// LogObserver writes skip events to an io.Writer, one warning per row.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs skipped rows to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnRowSkipped(line int, reason error) {
	fmt.Fprintf(o.w, "Warning: skipping malformed row %d: %v\n", line, reason)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnRowSkipped(int, error) {}
