// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main Bubble Tea model for ai-tui: a two-pane
// layout with the conversation sidebar on the left and the message thread,
// input line, and status bar on the right.
//
// The model never mutates conversations itself. It calls store operations
// and re-projects its panes when the store publishes a Change; completions
// arrive as ReplyMsg values addressed to the conversation that was current
// when the request was sent.
package chat
