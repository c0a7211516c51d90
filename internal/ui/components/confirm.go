// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Moham3dabdalla/ai-tui/internal/ui/styles"
)

// =============================================================================
// CONFIRM DIALOG
// =============================================================================

// ConfirmResultMsg reports the outcome of a confirm dialog. Tag carries the
// action the dialog was asked about so the chat model can dispatch it.
type ConfirmResultMsg struct {
	Tag       string
	Confirmed bool
}

// ConfirmDialog is a non-blocking yes/no prompt. The event loop keeps
// running while it is open; the answer arrives as a ConfirmResultMsg.
type ConfirmDialog struct {
	Title  string
	Prompt string
	Tag    string

	open bool
	yes  bool
}

// Open arms the dialog for a question. "No" is preselected so a stray Enter
// never destroys anything.
func (d *ConfirmDialog) Open(title, prompt, tag string) {
	d.Title = title
	d.Prompt = prompt
	d.Tag = tag
	d.open = true
	d.yes = false
}

// IsOpen reports whether the dialog is consuming input.
func (d *ConfirmDialog) IsOpen() bool {
	return d.open
}

// Update handles a key press while the dialog is open. The returned command
// is non-nil once the user has answered.
func (d *ConfirmDialog) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		return d.close(true)
	case "n", "N", "esc":
		return d.close(false)
	case "left", "right", "tab", "h", "l":
		d.yes = !d.yes
		return nil
	case "enter":
		return d.close(d.yes)
	}
	return nil
}

func (d *ConfirmDialog) close(confirmed bool) tea.Cmd {
	d.open = false
	tag := d.Tag
	return func() tea.Msg {
		return ConfirmResultMsg{Tag: tag, Confirmed: confirmed}
	}
}

// View renders the dialog box.
func (d *ConfirmDialog) View(theme *styles.Theme) string {
	if !d.open {
		return ""
	}

	yesBtn := theme.ConfirmButton.Render("Yes")
	noBtn := theme.ConfirmButtonActive.Render("No")
	if d.yes {
		yesBtn = theme.ConfirmButtonActive.Render("Yes")
		noBtn = theme.ConfirmButton.Render("No")
	}

	body := theme.ConfirmTitle.Render(d.Title) + "\n\n" +
		d.Prompt + "\n\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, yesBtn, noBtn) + "\n" +
		theme.ShortcutDesc.Render("y/n · esc cancels")

	return theme.ConfirmBox.Render(body)
}
