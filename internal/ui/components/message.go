// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Moham3dabdalla/ai-tui/internal/model"
	"github.com/Moham3dabdalla/ai-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGE RENDERER
// =============================================================================

// MessageView renders one message for the thread.
type MessageView struct {
	Message  *model.Message
	MaxWidth int

	// Markdown renders assistant text; nil falls back to plain text.
	Markdown *MarkdownRenderer

	// CopiedID marks the message whose code was just copied.
	CopiedID string
}

// Render renders the message with its role label and body.
func (v MessageView) Render(theme *styles.Theme) string {
	msg := v.Message

	label := theme.MessageMeta.Render(
		msg.Role.DisplayName() + " · " + msg.Timestamp.Format("15:04"))

	var body string
	switch msg.EffectiveKind() {
	case model.KindCode:
		cb := NewCodeBlock(msg.Language, msg.Content)
		cb.MaxWidth = v.MaxWidth
		cb.Copied = msg.ID == v.CopiedID
		body = cb.Render(theme)

	case model.KindImage:
		body = theme.ImageNotice.Render("[image] ctrl+s to save to file")

	default:
		body = v.renderText(theme)
	}

	align := lipgloss.Left
	if msg.Role == model.RoleUser {
		align = lipgloss.Right
	}

	block := label + "\n" + body
	return lipgloss.NewStyle().
		Width(v.MaxWidth).
		Align(align).
		Render(block)
}

// renderText renders a text message: markdown for AI replies, a plain bubble
// for the user's own words.
func (v MessageView) renderText(theme *styles.Theme) string {
	msg := v.Message
	bubbleWidth := v.MaxWidth - 8
	if bubbleWidth < 16 {
		bubbleWidth = 16
	}

	if msg.Role == model.RoleAI {
		content := msg.Content
		if v.Markdown != nil {
			content = v.Markdown.Render(content)
		}
		out := theme.AIBubble.MaxWidth(bubbleWidth).Render(content)
		if msg.ID == v.CopiedID {
			out += "\n" + theme.CodeCopiedTag.Render("Copied!")
		}
		return out
	}

	return theme.UserBubble.MaxWidth(bubbleWidth).Render(wrapPlain(msg.Content, bubbleWidth-6))
}

// wrapPlain hard-wraps text without styling. lipgloss wraps on render, but
// pre-wrapping keeps user text from overflowing the bubble border.
func wrapPlain(s string, width int) string {
	if width <= 0 {
		return s
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		for len([]rune(line)) > width {
			runes := []rune(line)
			cut := width
			for i := width; i > 0; i-- {
				if runes[i-1] == ' ' {
					cut = i
					break
				}
			}
			out = append(out, strings.TrimRight(string(runes[:cut]), " "))
			line = string(runes[cut:])
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
