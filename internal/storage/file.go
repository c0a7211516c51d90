// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/Moham3dabdalla/ai-tui/internal/util"
)

// =============================================================================
// FILE-BACKED KV
// =============================================================================

// FileKV stores all keys in a single JSON file. The whole map is rewritten
// atomically on every mutation, so the file is never left half-written.
type FileKV struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// NewFileKV opens (or creates) the JSON store at path.
func NewFileKV(path string) (*FileKV, error) {
	kv := &FileKV{
		path: path,
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return kv, nil
		}
		return nil, &StorageError{Op: "open", Err: err}
	}

	if err := json.Unmarshal(raw, &kv.data); err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}
	return kv, nil
}

// Get returns the value for key and whether it exists.
func (kv *FileKV) Get(key string) (string, bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	v, ok := kv.data[key]
	return v, ok, nil
}

// Set stores value under key and persists the file synchronously.
func (kv *FileKV) Set(key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	old, had := kv.data[key]
	kv.data[key] = value
	if err := kv.flushLocked(); err != nil {
		// Roll back the in-memory map so it matches what is on disk.
		if had {
			kv.data[key] = old
		} else {
			delete(kv.data, key)
		}
		return &StorageError{Op: "set", Key: key, Err: err}
	}
	return nil
}

// Delete removes key and persists the file synchronously.
func (kv *FileKV) Delete(key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	old, had := kv.data[key]
	if !had {
		return nil
	}
	delete(kv.data, key)
	if err := kv.flushLocked(); err != nil {
		kv.data[key] = old
		return &StorageError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

// Close is a no-op; every mutation is already on disk.
func (kv *FileKV) Close() error {
	return nil
}

// flushLocked writes the map to disk. Caller must hold kv.mu.
func (kv *FileKV) flushLocked() error {
	data, err := json.MarshalIndent(kv.data, "", "  ")
	if err != nil {
		return err
	}
	// RELIABILITY: Atomic write with fsync prevents data loss on crash.
	return util.AtomicWriteFile(kv.path, data, 0o644)
}
