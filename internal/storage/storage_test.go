// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// openBackends returns one of each KV implementation rooted in a temp dir.
// Both must satisfy the same behavioral contract.
func openBackends(t *testing.T) map[string]KV {
	t.Helper()

	fileKV, err := NewFileKV(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("NewFileKV failed: %v", err)
	}

	sqliteKV, err := NewSQLiteKV(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("NewSQLiteKV failed: %v", err)
	}

	t.Cleanup(func() {
		fileKV.Close()
		sqliteKV.Close()
	})

	return map[string]KV{
		"file":   fileKV,
		"sqlite": sqliteKV,
	}
}

// =============================================================================
// CONTRACT TESTS (both backends)
// =============================================================================

func TestKV_GetMissing(t *testing.T) {
	for name, kv := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := kv.Get("nope")
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if ok {
				t.Error("missing key reported as present")
			}
		})
	}
}

func TestKV_SetGet(t *testing.T) {
	for name, kv := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			if err := kv.Set(KeySelectedModel, "gemini-2.0-flash"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			got, ok, err := kv.Get(KeySelectedModel)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if !ok {
				t.Fatal("key not found after Set")
			}
			if got != "gemini-2.0-flash" {
				t.Errorf("value = %q, want %q", got, "gemini-2.0-flash")
			}
		})
	}
}

func TestKV_SetOverwrites(t *testing.T) {
	for name, kv := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			if err := kv.Set(KeyIsDarkTheme, "true"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := kv.Set(KeyIsDarkTheme, "false"); err != nil {
				t.Fatalf("second Set failed: %v", err)
			}

			got, _, err := kv.Get(KeyIsDarkTheme)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if got != "false" {
				t.Errorf("value = %q, want %q", got, "false")
			}
		})
	}
}

func TestKV_Delete(t *testing.T) {
	for name, kv := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			if err := kv.Set(KeyCurrentConversationID, "123"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := kv.Delete(KeyCurrentConversationID); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}

			_, ok, err := kv.Get(KeyCurrentConversationID)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if ok {
				t.Error("key still present after Delete")
			}

			// Deleting a missing key must not error.
			if err := kv.Delete(KeyCurrentConversationID); err != nil {
				t.Errorf("repeated Delete failed: %v", err)
			}
		})
	}
}

func TestKV_LargeValue(t *testing.T) {
	// Conversation lists can grow large; values must round-trip intact.
	big := make([]byte, 0, 1<<16)
	for i := 0; i < 1<<12; i++ {
		big = append(big, `{"id":"1","msg":"héllo"}`...)
	}

	for name, kv := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			if err := kv.Set(KeyConversations, string(big)); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			got, _, err := kv.Get(KeyConversations)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if got != string(big) {
				t.Error("large value did not round-trip")
			}
		})
	}
}

// =============================================================================
// FILE BACKEND TESTS
// =============================================================================

func TestFileKV_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	kv, err := NewFileKV(path)
	if err != nil {
		t.Fatalf("NewFileKV failed: %v", err)
	}
	if err := kv.Set(KeySelectedModel, "gemini-2.0-flash"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	kv.Close()

	reopened, err := NewFileKV(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Get(KeySelectedModel)
	if err != nil || !ok {
		t.Fatalf("Get after reopen: ok=%v err=%v", ok, err)
	}
	if got != "gemini-2.0-flash" {
		t.Errorf("value = %q, want %q", got, "gemini-2.0-flash")
	}
}

func TestFileKV_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := NewFileKV(path)
	if err == nil {
		t.Fatal("expected error for corrupt file")
	}
	var se *StorageError
	if !errors.As(err, &se) {
		t.Errorf("error type = %T, want *StorageError", err)
	}
}

// =============================================================================
// SQLITE BACKEND TESTS
// =============================================================================

func TestSQLiteKV_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	kv, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("NewSQLiteKV failed: %v", err)
	}
	if err := kv.Set(KeyIsDarkTheme, "true"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	kv.Close()

	reopened, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Get(KeyIsDarkTheme)
	if err != nil || !ok {
		t.Fatalf("Get after reopen: ok=%v err=%v", ok, err)
	}
	if got != "true" {
		t.Errorf("value = %q, want %q", got, "true")
	}
}

// =============================================================================
// OPEN TESTS
// =============================================================================

func TestOpen(t *testing.T) {
	tests := []struct {
		backend string
		wantErr bool
	}{
		{BackendSQLite, false},
		{BackendFile, false},
		{"", false}, // defaults to sqlite
		{"redis", true},
	}

	for _, tt := range tests {
		t.Run("backend="+tt.backend, func(t *testing.T) {
			kv, err := Open(tt.backend, t.TempDir())
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			kv.Close()
		})
	}
}
