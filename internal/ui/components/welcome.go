// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/Moham3dabdalla/ai-tui/internal/ui/styles"
)

// EmptyThread renders the placeholder shown when the current conversation
// has no messages, or when there is no conversation at all.
func EmptyThread(theme *styles.Theme, width, height int) string {
	lines := []string{
		theme.Header.Render("ai-tui"),
		"",
		theme.ThreadEmpty.Render("Start a conversation"),
		"",
		theme.ShortcutDesc.Render("type a message and press enter · /help for commands"),
	}

	body := strings.Join(lines, "\n")
	pad := (height - len(lines)) / 2
	if pad > 0 {
		body = strings.Repeat("\n", pad) + body
	}
	return theme.ThreadEmpty.Width(width).Render(body)
}
