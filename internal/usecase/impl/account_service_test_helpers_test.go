package impl

import (
	"io"
	"log/slog"
)

// newDiscardLogger returns a logger that drops everything, for quiet tests.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
