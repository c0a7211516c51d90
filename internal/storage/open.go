// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"fmt"
	"path/filepath"
)

// Backend names accepted in the config file.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Open returns a KV for the named backend rooted at dataDir.
func Open(backend, dataDir string) (KV, error) {
	switch backend {
	case BackendSQLite, "":
		return NewSQLiteKV(SQLitePath(dataDir))
	case BackendFile:
		return NewFileKV(FilePath(dataDir))
	default:
		return nil, &StorageError{Op: "open", Err: fmt.Errorf("unknown backend %q", backend)}
	}
}

// SQLitePath returns the database path for dataDir.
func SQLitePath(dataDir string) string {
	return filepath.Join(dataDir, "state.db")
}

// FilePath returns the JSON state path for dataDir.
func FilePath(dataDir string) string {
	return filepath.Join(dataDir, "state.json")
}
