// Package testutil holds small helpers shared across package tests.
package testutil

import (
	"bytes"
	"log/slog"
)

// NewBufferLogger returns a text slog logger writing into the returned buffer,
// so tests can assert on emitted log lines.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}
