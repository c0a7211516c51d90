// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

// =============================================================================
// WELL-KNOWN KEYS
// =============================================================================

// Keys used by ai-tui for application state. Values are stored as strings;
// structured values (the conversation list) are JSON-encoded.
const (
	// KeyConversations holds the JSON-encoded conversation list,
	// newest first.
	KeyConversations = "conversations"

	// KeyCurrentConversationID holds the ID of the selected conversation.
	KeyCurrentConversationID = "currentConversationId"

	// KeyIsDarkTheme holds "true" or "false".
	KeyIsDarkTheme = "isDarkTheme"

	// KeySelectedModel holds the model identifier used for new requests.
	KeySelectedModel = "selectedModel"
)

// =============================================================================
// KV INTERFACE
// =============================================================================

// KV is a string key-value store. Implementations must persist every Set
// and Delete before returning.
type KV interface {
	// Get returns the value for key. The boolean reports whether the key
	// exists; a missing key is not an error.
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting a missing key is a no-op.
	Delete(key string) error

	// Close releases any resources held by the store.
	Close() error
}

// =============================================================================
// ERRORS
// =============================================================================

// StorageError represents a persistence failure.
// It implements the error interface and can be compared using errors.Is.
type StorageError struct {
	Op  string // operation: "get", "set", "delete", "open"
	Key string // key involved, if any
	Err error  // underlying cause
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Key != "" {
		return "storage " + e.Op + " " + e.Key + ": " + e.Err.Error()
	}
	return "storage " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause for errors.Is / errors.As.
func (e *StorageError) Unwrap() error {
	return e.Err
}
