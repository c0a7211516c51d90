// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides key-value persistence for ai-tui.
//
// All application state (conversation list, current conversation ID, theme,
// selected model) is stored under the four well-known keys in a KV backend.
// Two backends are provided: SQLiteKV (the default) backed by a single-file
// SQLite database, and FileKV backed by a JSON file written atomically.
//
// Every mutation is persisted synchronously; there is no write-behind cache.
package storage
