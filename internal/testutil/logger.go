package testutil

import (
	"bytes"
	"log/slog"
)

// NewBufferLogger returns a JSON slog logger writing into a buffer so
// tests can assert on emitted log lines.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewJSONHandler(buf, nil)), buf
}
