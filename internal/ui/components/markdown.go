// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// =============================================================================
// MARKDOWN RENDERER
// =============================================================================

// MarkdownRenderer renders assistant text messages as terminal markdown.
// Construction is not free, so the chat model keeps one per width/theme.
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer creates a renderer wrapping at width columns.
func NewMarkdownRenderer(width int, dark bool) (*MarkdownRenderer, error) {
	styleName := "light"
	if dark {
		styleName = "dark"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styleName),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil, err
	}
	return &MarkdownRenderer{renderer: r}, nil
}

// Render renders markdown to styled terminal text. On renderer failure the
// raw text comes back so the thread never loses content.
func (m *MarkdownRenderer) Render(text string) string {
	out, err := m.renderer.Render(text)
	if err != nil {
		return text
	}
	// Glamour pads with blank lines; the bubble supplies its own margin.
	return strings.Trim(out, "\n")
}
