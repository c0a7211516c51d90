// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

// This file defines all Bubble Tea message types used by the chat interface.
package chat

import (
	"github.com/Moham3dabdalla/ai-tui/internal/config"
	"github.com/Moham3dabdalla/ai-tui/internal/store"
)

// =============================================================================
// STORE MESSAGES
// =============================================================================

// StoreChangedMsg is published after every store mutation; it names the view
// regions that must re-project.
type StoreChangedMsg struct {
	Change store.Change
}

// =============================================================================
// COMPLETION MESSAGES
// =============================================================================

// ReplyMsg delivers the outcome of a completion request. ConversationID is
// the conversation that was current when the request went out; the reply is
// appended there even if the selection moved, and dropped if it was deleted.
type ReplyMsg struct {
	ConversationID string
	Text           string
	Err            error
}

// =============================================================================
// CLIPBOARD MESSAGES
// =============================================================================

// CopyResetMsg reverts a "Copied!" label back to the copy hint.
type CopyResetMsg struct {
	MessageID string
}

// =============================================================================
// FILE MESSAGES
// =============================================================================

// ImageSavedMsg reports the outcome of saving an image message to a file.
type ImageSavedMsg struct {
	Path string
	Err  error
}

// ExportDoneMsg reports the outcome of a conversation export.
type ExportDoneMsg struct {
	Path string
	Err  error
}

// =============================================================================
// UI MESSAGES
// =============================================================================

// NoticeMsg shows a transient status-line notice.
type NoticeMsg struct {
	Text    string
	IsError bool
}

// NoticeExpireMsg clears the status-line notice.
type NoticeExpireMsg struct {
	// Seq guards against an old timer clearing a newer notice.
	Seq int
}

// ConfigReloadedMsg delivers a fresh config from the file watcher.
type ConfigReloadedMsg struct {
	Config *config.Config
}
