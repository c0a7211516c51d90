// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store holds the conversation state for ai-tui.
//
// Store is the single owner of the conversation list and the current
// selection. The UI never mutates conversations directly: it calls Store
// operations, each of which persists synchronously to the backing KV and
// then notifies subscribers which view regions must refresh.
//
// Invariant: CurrentID is either empty or the ID of a conversation in the
// list. Every operation that could break this repairs it before returning.
package store
