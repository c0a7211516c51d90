// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

// This file renders the two-pane layout: sidebar, thread, input, status bar.
package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Moham3dabdalla/ai-tui/internal/ui/components"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	thread := m.viewport.View()
	if m.confirm.IsOpen() {
		thread = lipgloss.Place(
			m.threadWidth(), m.viewport.Height,
			lipgloss.Center, lipgloss.Center,
			m.confirm.View(m.theme),
		)
	}

	right := lipgloss.JoinVertical(lipgloss.Left,
		thread,
		m.renderInput(),
		m.renderStatusBar(),
	)

	if m.sidebar.Width == 0 {
		return m.theme.App.Render(right)
	}

	return m.theme.App.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		m.sidebarView,
		right,
	))
}

// =============================================================================
// REGION PROJECTION
// =============================================================================

// refreshSidebar re-projects the conversation list from store state.
func (m *Model) refreshSidebar() {
	m.sidebarView = m.sidebar.Render(m.theme, m.store.Conversations(), m.store.CurrentID())
}

// refreshThread re-projects the message thread and scrolls to the bottom.
// The whole region is rebuilt from store state on every change.
func (m *Model) refreshThread() {
	if !m.ready {
		return
	}

	if m.showHelp {
		m.viewport.SetContent(m.renderHelp())
		m.viewport.GotoTop()
		return
	}

	conv := m.store.Current()
	if conv == nil || len(conv.Messages) == 0 {
		content := components.EmptyThread(m.theme, m.threadWidth(), m.viewport.Height)
		if m.typing.Active() {
			content += "\n" + m.typing.View(m.theme)
		}
		m.viewport.SetContent(content)
		return
	}

	blocks := make([]string, 0, len(conv.Messages)+1)
	for _, msg := range conv.Messages {
		mv := components.MessageView{
			Message:  msg,
			MaxWidth: m.threadWidth(),
			Markdown: m.markdown,
			CopiedID: m.copiedID,
		}
		blocks = append(blocks, mv.Render(m.theme))
	}

	if m.typing.Active() {
		blocks = append(blocks, m.typing.View(m.theme))
	}

	m.viewport.SetContent(strings.Join(blocks, "\n\n"))
	m.viewport.GotoBottom()
}

// =============================================================================
// CHROME
// =============================================================================

func (m Model) renderInput() string {
	return m.theme.InputContainer.Width(m.threadWidth()).Render(
		m.theme.InputPrompt.Render("> ") + m.input.View())
}

func (m Model) renderStatusBar() string {
	left := m.theme.ModelBadge.Render(m.selectedModel)

	middle := ""
	if m.notice != "" {
		if m.noticeIsErr {
			middle = m.theme.ErrorText.Render(m.notice)
		} else {
			middle = m.theme.SuccessText.Render(m.notice)
		}
	}

	var hints []string
	for _, b := range m.keys.ShortHelp() {
		hints = append(hints,
			m.theme.ShortcutKey.Render(b.Help().Key)+" "+
				m.theme.ShortcutDesc.Render(b.Help().Desc))
	}
	right := strings.Join(hints, "  ")

	bar := left + "  " + middle
	gap := m.threadWidth() - lipgloss.Width(bar) - lipgloss.Width(right) - 2
	if gap > 0 {
		bar += strings.Repeat(" ", gap)
	} else {
		right = ""
	}
	return m.theme.StatusBar.Width(m.threadWidth()).Render(bar + right)
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Keyboard & commands"))
	b.WriteString("\n\n")

	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			b.WriteString(m.theme.ShortcutKey.Render(padRight(binding.Help().Key, 8)))
			b.WriteString(" ")
			b.WriteString(m.theme.ShortcutDesc.Render(binding.Help().Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	commands := []struct{ cmd, desc string }{
		{"/new", "start a new conversation"},
		{"/clear", "delete every conversation"},
		{"/model", "list or switch models"},
		{"/theme", "toggle dark/light"},
		{"/export", "export conversation (md or json)"},
		{"/image", "attach an image file"},
		{"/help", "toggle this help"},
	}
	for _, c := range commands {
		b.WriteString(m.theme.ShortcutKey.Render(padRight(c.cmd, 8)))
		b.WriteString(" ")
		b.WriteString(m.theme.ShortcutDesc.Render(c.desc))
		b.WriteString("\n")
	}

	return b.String()
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
