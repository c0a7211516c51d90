// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

// This file implements the slash commands typed into the input line.
package chat

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Moham3dabdalla/ai-tui/internal/export"
	"github.com/Moham3dabdalla/ai-tui/internal/model"
	"github.com/Moham3dabdalla/ai-tui/internal/storage"
	"github.com/Moham3dabdalla/ai-tui/internal/ui/components"
	"github.com/Moham3dabdalla/ai-tui/internal/ui/styles"
)

// handleCommand dispatches a "/command args" line.
func (m Model) handleCommand(line string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(line)
	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "/new":
		return m.createConversation()

	case "/clear":
		if m.store.Count() == 0 {
			return m.setNotice("Nothing to clear", false)
		}
		m.confirm.Open("Clear all conversations", "Delete every conversation?", "clear")
		return m, nil

	case "/model":
		return m.switchModel(args)

	case "/theme":
		return m.toggleTheme()

	case "/export":
		format := "md"
		if len(args) > 0 {
			format = args[0]
		}
		return m.exportCurrent(format)

	case "/image":
		if len(args) == 0 {
			return m.setNotice("Usage: /image <path>", true)
		}
		return m.attachImage(strings.Join(args, " "))

	case "/speech":
		return m.setNotice("Speech capture is not supported in a terminal", true)

	case "/help":
		m.showHelp = !m.showHelp
		m.refreshThread()
		return m, nil
	}

	return m.setNotice("Unknown command "+cmd, true)
}

// switchModel updates the model used for new requests and persists it.
func (m Model) switchModel(args []string) (tea.Model, tea.Cmd) {
	if len(args) == 0 {
		return m.setNotice("Models: "+strings.Join(m.cfg.Models, ", "), false)
	}

	name := args[0]
	if !m.cfg.HasModel(name) {
		return m.setNotice("Unknown model "+name+" (see /model)", true)
	}

	m.selectedModel = name
	if err := m.kv.Set(storage.KeySelectedModel, name); err != nil {
		m.log.Error().Err(err).Msg("persist selected model failed")
	}
	return m.setNotice("Model set to "+name, false)
}

// toggleTheme flips dark/light, persists the choice, and rebuilds styles.
func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	isDark := !m.theme.IsDark
	if err := m.kv.Set(storage.KeyIsDarkTheme, boolString(isDark)); err != nil {
		m.log.Error().Err(err).Msg("persist theme failed")
	}

	m.theme = styles.NewTheme(&isDark)
	m.theme.SetSize(m.width, m.height)
	if md, err := components.NewMarkdownRenderer(m.threadWidth()-10, isDark); err == nil {
		m.markdown = md
	}
	m.refreshSidebar()
	m.refreshThread()

	label := "light"
	if isDark {
		label = "dark"
	}
	return m.setNotice("Theme set to "+label, false)
}

// exportCurrent writes the selected conversation to a file in the data dir.
func (m Model) exportCurrent(format string) (tea.Model, tea.Cmd) {
	conv := m.store.Current()
	if conv == nil {
		return m.setNotice("No conversation to export", true)
	}

	dataDir := m.cfg.DataDir
	return m, func() tea.Msg {
		var path string
		var err error
		switch format {
		case "json":
			path, err = export.JSON(conv, dataDir)
		case "md", "markdown":
			path, err = export.Markdown(conv, dataDir)
		default:
			return NoticeMsg{Text: "Usage: /export [md|json]", IsError: true}
		}
		return ExportDoneMsg{Path: path, Err: err}
	}
}

// attachImage reads a local image file into a data-URL image message on the
// current conversation.
func (m Model) attachImage(path string) (tea.Model, tea.Cmd) {
	conv := m.store.Current()
	if conv == nil {
		created, err := m.store.Create(m.selectedModel)
		if err != nil {
			return m.setNotice("Could not create conversation", true)
		}
		conv = created
	}

	dataURL, err := export.ReadImageDataURL(path)
	if err != nil {
		m.log.Error().Err(err).Str("path", path).Msg("image read failed")
		return m.setNotice("Could not read image "+path, true)
	}

	if err := m.store.Append(conv.ID, model.NewImageMessage(model.RoleUser, dataURL)); err != nil {
		return m.setNotice("Could not attach image", true)
	}
	return m, nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
