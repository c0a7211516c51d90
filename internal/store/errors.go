// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

// ErrNotFound is returned when an operation names a conversation that is not
// in the list. Use errors.Is(err, ErrNotFound) to check for this error.
var ErrNotFound = &StoreError{Message: "conversation not found"}

// StoreError represents a store-related error.
// It implements the error interface and can be compared using errors.Is.
type StoreError struct {
	Message string
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return e.Message
}

// Is implements errors.Is support for comparing store errors.
func (e *StoreError) Is(target error) bool {
	t, ok := target.(*StoreError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}
