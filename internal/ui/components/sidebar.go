// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/Moham3dabdalla/ai-tui/internal/model"
	"github.com/Moham3dabdalla/ai-tui/internal/ui/styles"
	"github.com/Moham3dabdalla/ai-tui/internal/util"
)

// =============================================================================
// SIDEBAR
// =============================================================================

// Sidebar projects the conversation list. It is a pure renderer: the list
// and selection come from the store snapshot on every render.
type Sidebar struct {
	Width  int
	Height int
}

// Render renders the full sidebar, newest conversation first.
func (s Sidebar) Render(theme *styles.Theme, conversations []*model.Conversation, currentID string) string {
	if s.Width <= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.SidebarTitle.Render("Conversations"))
	b.WriteString("\n\n")

	if len(conversations) == 0 {
		b.WriteString(theme.SidebarEmpty.Render("No conversations yet"))
		return theme.Sidebar.Width(s.Width).Height(s.Height).Render(b.String())
	}

	// Title column inside the item padding.
	titleWidth := s.Width - 4
	if titleWidth < 8 {
		titleWidth = 8
	}

	for _, conv := range conversations {
		title := util.TruncateWidth(conv.Title, titleWidth)
		if conv.ID == currentID {
			b.WriteString(theme.SidebarItemActive.Render(title))
		} else {
			b.WriteString(theme.SidebarItem.Render(title))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.SidebarItemPreview.Render(
		util.TruncateWidth("ctrl+n new · ctrl+d delete", titleWidth)))

	return theme.Sidebar.Width(s.Width).Height(s.Height).Render(b.String())
}
