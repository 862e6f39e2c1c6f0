package testutil

import (
	"bytes"
	"log/slog"
)

// NewBufferLogger returns a text logger writing to the returned buffer.
// An optional level overrides the default of debug, so call traces are kept.
func NewBufferLogger(level ...slog.Level) (*slog.Logger, *bytes.Buffer) {
	lvl := slog.LevelDebug
	if len(level) > 0 {
		lvl = level[0]
	}
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: lvl}))
	return logger, &buf
}
