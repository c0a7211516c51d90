// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging sets up the zerolog logger for ai-tui.
//
// The TUI owns the terminal, so logs go to a file in the data directory
// instead of stderr. Remote-call failures land here with full diagnostic
// detail while the thread only ever shows the fallback reply.
package logging

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// FileName is the log file created inside the data directory.
const FileName = "ai-tui.log"

// New opens (or creates) the log file under dataDir and returns a logger
// writing to it, plus a close func for shutdown. If the file cannot be
// opened the logger is a no-op; the app must still run.
func New(dataDir string, debug bool) (zerolog.Logger, func()) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return zerolog.Nop(), func() {}
	}

	path := filepath.Join(dataDir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}
	}

	logger := zerolog.New(f).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger, func() { f.Close() }
}
