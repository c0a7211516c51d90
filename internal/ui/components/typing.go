// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Moham3dabdalla/ai-tui/internal/ui/styles"
)

// =============================================================================
// TYPING INDICATOR
// =============================================================================

// TypingIndicator shows that a reply is pending. It appears in the thread
// when the request goes out and disappears exactly once on either outcome.
type TypingIndicator struct {
	spinner spinner.Model
	active  bool
}

// NewTypingIndicator creates the indicator with an ASCII-safe spinner.
func NewTypingIndicator() TypingIndicator {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	return TypingIndicator{spinner: s}
}

// Start activates the indicator and returns the tick command.
func (t *TypingIndicator) Start() tea.Cmd {
	t.active = true
	return t.spinner.Tick
}

// Stop deactivates the indicator.
func (t *TypingIndicator) Stop() {
	t.active = false
}

// Active reports whether a reply is pending.
func (t *TypingIndicator) Active() bool {
	return t.active
}

// Update advances the spinner animation.
func (t *TypingIndicator) Update(msg tea.Msg) tea.Cmd {
	if !t.active {
		return nil
	}
	var cmd tea.Cmd
	t.spinner, cmd = t.spinner.Update(msg)
	return cmd
}

// View renders the indicator line, or "" when inactive.
func (t *TypingIndicator) View(theme *styles.Theme) string {
	if !t.active {
		return ""
	}
	return theme.Spinner.Render(t.spinner.View()) + " " +
		theme.TypingText.Render("AI is typing...")
}
