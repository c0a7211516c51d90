// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the ai-tui interface:
// the conversation sidebar, message rendering, highlighted code blocks,
// the typing indicator, and the confirm dialog.
package components
