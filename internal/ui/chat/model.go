// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/Moham3dabdalla/ai-tui/internal/config"
	"github.com/Moham3dabdalla/ai-tui/internal/storage"
	"github.com/Moham3dabdalla/ai-tui/internal/store"
	"github.com/Moham3dabdalla/ai-tui/internal/ui/components"
	"github.com/Moham3dabdalla/ai-tui/internal/ui/styles"
)

// completer is the slice of the Gemini client the chat model needs.
type completer interface {
	Generate(ctx context.Context, model, utterance string) (string, error)
}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the main Bubble Tea model for ai-tui.
type Model struct {
	// Collaborators
	store  *store.Store
	client completer
	kv     storage.KV
	cfg    *config.Config
	theme  *styles.Theme
	log    zerolog.Logger

	// Components
	viewport viewport.Model
	input    textinput.Model
	typing   components.TypingIndicator
	confirm  components.ConfirmDialog
	sidebar  components.Sidebar
	markdown *components.MarkdownRenderer
	keys     KeyMap

	// Projection caches, rebuilt on StoreChangedMsg
	sidebarView string

	// State
	selectedModel string
	copiedID      string
	notice        string
	noticeIsErr   bool
	noticeSeq     int
	showHelp      bool
	width         int
	height        int
	ready         bool
}

// Deps carries everything the chat model needs.
type Deps struct {
	Store  *store.Store
	Client completer
	KV     storage.KV
	Config *config.Config
	Theme  *styles.Theme
	Log    zerolog.Logger
}

// New creates the chat model. The selected model is restored from the KV
// when the user has picked one before, else the configured default.
func New(d Deps) Model {
	input := textinput.New()
	input.Placeholder = "Type your message here..."
	input.Prompt = ""
	input.CharLimit = 0
	input.Focus()

	selected := d.Config.DefaultModel
	if v, ok, err := d.KV.Get(storage.KeySelectedModel); err == nil && ok && d.Config.HasModel(v) {
		selected = v
	}

	return Model{
		store:         d.Store,
		client:        d.Client,
		kv:            d.KV,
		cfg:           d.Config,
		theme:         d.Theme,
		log:           d.Log.With().Str("component", "chat").Logger(),
		input:         input,
		typing:        components.NewTypingIndicator(),
		keys:          DefaultKeyMap(),
		selectedModel: selected,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// currentConversationTitle returns the selected conversation's title for the
// confirm dialog, or "" when nothing is selected.
func (m Model) currentConversationTitle() string {
	if conv := m.store.Current(); conv != nil {
		return conv.Title
	}
	return ""
}

// threadWidth returns the columns available for the thread pane.
func (m Model) threadWidth() int {
	w := m.width - m.theme.SidebarWidth()
	if m.theme.SidebarWidth() > 0 {
		w -= 2 // sidebar border + padding
	}
	if w < 20 {
		w = 20
	}
	return w
}
