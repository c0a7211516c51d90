// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Moham3dabdalla/ai-tui/internal/gemini"
	"github.com/Moham3dabdalla/ai-tui/internal/model"
	"github.com/Moham3dabdalla/ai-tui/internal/store"
	"github.com/Moham3dabdalla/ai-tui/internal/ui/components"
)

// noticeDuration is how long transient status-line notices stay visible.
const noticeDuration = 3 * time.Second

// copiedDuration is how long the "Copied!" label stays before reverting.
const copiedDuration = 2 * time.Second

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case StoreChangedMsg:
		if msg.Change.Affects(store.RegionSidebar) {
			m.refreshSidebar()
		}
		if msg.Change.Affects(store.RegionThread) {
			m.refreshThread()
		}
		return m, nil

	case ReplyMsg:
		return m.handleReply(msg)

	case components.ConfirmResultMsg:
		return m.handleConfirmResult(msg)

	case CopyResetMsg:
		if m.copiedID == msg.MessageID {
			m.copiedID = ""
			m.refreshThread()
		}
		return m, nil

	case NoticeMsg:
		return m.setNotice(msg.Text, msg.IsError)

	case NoticeExpireMsg:
		if msg.Seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case ImageSavedMsg:
		if msg.Err != nil {
			m.log.Error().Err(msg.Err).Msg("image save failed")
			return m.setNotice("Could not save image", true)
		}
		return m.setNotice("Image saved to "+msg.Path, false)

	case ExportDoneMsg:
		if msg.Err != nil {
			m.log.Error().Err(msg.Err).Msg("export failed")
			return m.setNotice("Export failed", true)
		}
		return m.setNotice("Exported to "+msg.Path, false)

	case ConfigReloadedMsg:
		m.cfg = msg.Config
		if !m.cfg.HasModel(m.selectedModel) {
			m.selectedModel = m.cfg.DefaultModel
		}
		return m, nil
	}

	// Spinner ticks and other component messages. A consumed tick advanced
	// the frame, and the frame lives inside the cached viewport content, so
	// the thread has to re-project for the animation to show.
	var cmds []tea.Cmd
	if cmd := m.typing.Update(msg); cmd != nil {
		m.refreshThread()
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// =============================================================================
// RESIZE
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)

	threadHeight := m.height - 4 // input row, status bar, borders
	if threadHeight < 3 {
		threadHeight = 3
	}

	if !m.ready {
		m.viewport = viewport.New(m.threadWidth(), threadHeight)
		m.ready = true
	} else {
		m.viewport.Width = m.threadWidth()
		m.viewport.Height = threadHeight
	}

	m.sidebar = components.Sidebar{
		Width:  m.theme.SidebarWidth(),
		Height: threadHeight,
	}
	m.input.Width = m.threadWidth() - 4

	// Markdown wraps at the bubble width; rebuild on every resize.
	if md, err := components.NewMarkdownRenderer(m.threadWidth()-10, m.theme.IsDark); err == nil {
		m.markdown = md
	}

	m.refreshSidebar()
	m.refreshThread()
	return m, nil
}

// =============================================================================
// KEYS
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An open dialog owns the keyboard.
	if m.confirm.IsOpen() {
		return m, m.confirm.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		return m.handleSubmit()

	case key.Matches(msg, m.keys.Cancel):
		m.input.SetValue("")
		return m, nil

	case key.Matches(msg, m.keys.NewConversation):
		return m.createConversation()

	case key.Matches(msg, m.keys.DeleteConversation):
		return m.askDeleteCurrent()

	case key.Matches(msg, m.keys.NextConversation):
		return m.selectAdjacent(1)

	case key.Matches(msg, m.keys.PrevConversation):
		return m.selectAdjacent(-1)

	case key.Matches(msg, m.keys.CopyCode):
		return m.copyLastCode()

	case key.Matches(msg, m.keys.SaveImage):
		return m.saveLastImage()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.refreshThread()
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown),
		key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// SUBMIT / COMPLETION
// =============================================================================

func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	if strings.HasPrefix(text, "/") {
		m.input.SetValue("")
		return m.handleCommand(text)
	}

	// One request at a time; the indicator is in the thread until the reply
	// or the fallback lands.
	if m.typing.Active() {
		return m.setNotice("Waiting for the current reply", true)
	}

	m.input.SetValue("")
	return m.sendUtterance(text)
}

// sendUtterance appends the user message and fires the completion request,
// creating a conversation first when none is selected.
func (m Model) sendUtterance(text string) (tea.Model, tea.Cmd) {
	conv := m.store.Current()
	if conv == nil {
		created, err := m.store.Create(m.selectedModel)
		if err != nil {
			m.log.Error().Err(err).Msg("create conversation failed")
			return m.setNotice("Could not create conversation", true)
		}
		conv = created
	}

	if err := m.store.Append(conv.ID, model.NewUserMessage(text)); err != nil {
		m.log.Error().Err(err).Msg("append user message failed")
		return m.setNotice("Could not save message", true)
	}

	tickCmd := m.typing.Start()
	m.refreshThread()

	// Capture the target conversation ID now. The reply is addressed to this
	// conversation no matter where the selection is when it arrives.
	targetID := conv.ID
	modelName := m.selectedModel
	client := m.client
	timeout := m.cfg.RequestTimeout()

	requestCmd := func() tea.Msg {
		ctx, cancel := contextWithTimeout(timeout)
		defer cancel()
		reply, err := client.Generate(ctx, modelName, text)
		return ReplyMsg{ConversationID: targetID, Text: reply, Err: err}
	}

	return m, tea.Batch(tickCmd, requestCmd)
}

func (m Model) handleReply(msg ReplyMsg) (tea.Model, tea.Cmd) {
	// The indicator comes down exactly once, on either outcome.
	m.typing.Stop()

	text := msg.Text
	if msg.Err != nil {
		m.log.Error().Err(msg.Err).Str("conversation", msg.ConversationID).Msg("completion failed")
		text = gemini.FallbackReply
	}

	reply := buildAIMessage(text)
	if err := m.store.Append(msg.ConversationID, reply); err != nil {
		// Conversation deleted while the request was in flight; drop it.
		m.refreshThread()
		return m, nil
	}
	return m, nil
}

// buildAIMessage classifies a reply: a response that is a single fenced code
// block becomes a code message, anything else stays text.
func buildAIMessage(text string) *model.Message {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "```") && strings.HasSuffix(trimmed, "```") && strings.Count(trimmed, "```") == 2 {
		if code, lang, ok := components.ExtractFences(trimmed); ok {
			return model.NewCodeMessage(model.RoleAI, code, lang)
		}
	}
	return model.NewAIMessage(text)
}

// =============================================================================
// CONVERSATION ACTIONS
// =============================================================================

func (m Model) createConversation() (tea.Model, tea.Cmd) {
	if _, err := m.store.Create(m.selectedModel); err != nil {
		m.log.Error().Err(err).Msg("create conversation failed")
		return m.setNotice("Could not create conversation", true)
	}
	return m, nil
}

func (m Model) askDeleteCurrent() (tea.Model, tea.Cmd) {
	id := m.store.CurrentID()
	if id == "" {
		return m, nil
	}
	m.confirm.Open(
		"Delete conversation",
		"Delete \""+m.currentConversationTitle()+"\"?",
		"delete:"+id,
	)
	return m, nil
}

func (m Model) handleConfirmResult(msg components.ConfirmResultMsg) (tea.Model, tea.Cmd) {
	if !msg.Confirmed {
		return m, nil
	}

	switch {
	case strings.HasPrefix(msg.Tag, "delete:"):
		id := strings.TrimPrefix(msg.Tag, "delete:")
		if err := m.store.Delete(id); err != nil {
			m.log.Error().Err(err).Str("conversation", id).Msg("delete failed")
			return m.setNotice("Could not delete conversation", true)
		}
	case msg.Tag == "clear":
		if err := m.store.ClearAll(); err != nil {
			m.log.Error().Err(err).Msg("clear all failed")
			return m.setNotice("Could not clear conversations", true)
		}
	}
	return m, nil
}

// selectAdjacent moves the selection within the sidebar order.
func (m Model) selectAdjacent(delta int) (tea.Model, tea.Cmd) {
	convs := m.store.Conversations()
	if len(convs) == 0 {
		return m, nil
	}

	idx := 0
	current := m.store.CurrentID()
	for i, c := range convs {
		if c.ID == current {
			idx = i
			break
		}
	}

	idx += delta
	if idx < 0 {
		idx = len(convs) - 1
	}
	if idx >= len(convs) {
		idx = 0
	}
	if err := m.store.Select(convs[idx].ID); err != nil {
		m.log.Error().Err(err).Msg("select failed")
	}
	return m, nil
}

// =============================================================================
// NOTICES
// =============================================================================

func (m Model) setNotice(text string, isErr bool) (Model, tea.Cmd) {
	m.notice = text
	m.noticeIsErr = isErr
	m.noticeSeq++
	seq := m.noticeSeq
	return m, tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return NoticeExpireMsg{Seq: seq}
	})
}
