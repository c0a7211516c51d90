// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Moham3dabdalla/ai-tui/internal/export"
	"github.com/Moham3dabdalla/ai-tui/internal/model"
	"github.com/Moham3dabdalla/ai-tui/internal/ui/components"
)

func contextWithTimeout(d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), d)
}

// =============================================================================
// CLIPBOARD
// =============================================================================

// copyLastCode copies the most recent code content of the current
// conversation to the clipboard and swaps the label to "Copied!" for about
// two seconds.
func (m Model) copyLastCode() (tea.Model, tea.Cmd) {
	conv := m.store.Current()
	if conv == nil {
		return m, nil
	}

	// Newest first: a code message, or a text message carrying a fence.
	for i := len(conv.Messages) - 1; i >= 0; i-- {
		msg := conv.Messages[i]
		code := ""
		switch msg.EffectiveKind() {
		case model.KindCode:
			code = msg.Content
		case model.KindText:
			if fenced, _, ok := components.ExtractFences(msg.Content); ok {
				code = fenced
			}
		}
		if code == "" {
			continue
		}

		if err := clipboard.WriteAll(code); err != nil {
			m.log.Error().Err(err).Msg("clipboard write failed")
			return m.setNotice("Could not access clipboard", true)
		}

		m.copiedID = msg.ID
		m.refreshThread()
		id := msg.ID
		return m, tea.Tick(copiedDuration, func(time.Time) tea.Msg {
			return CopyResetMsg{MessageID: id}
		})
	}

	return m.setNotice("No code to copy", true)
}

// =============================================================================
// IMAGES
// =============================================================================

// saveLastImage writes the most recent image message of the current
// conversation to a file in the data directory.
func (m Model) saveLastImage() (tea.Model, tea.Cmd) {
	conv := m.store.Current()
	if conv == nil {
		return m, nil
	}

	for i := len(conv.Messages) - 1; i >= 0; i-- {
		msg := conv.Messages[i]
		if msg.EffectiveKind() != model.KindImage {
			continue
		}
		dataURL := msg.Content
		dataDir := m.cfg.DataDir
		return m, func() tea.Msg {
			path, err := export.SaveImage(dataURL, dataDir)
			return ImageSavedMsg{Path: path, Err: err}
		}
	}

	return m.setNotice("No image in this conversation", true)
}
