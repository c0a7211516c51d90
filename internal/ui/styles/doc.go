// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for ai-tui.
// All colors use Lip Gloss AdaptiveColor; the persisted isDarkTheme value
// overrides terminal background detection once the user has toggled.
package styles
