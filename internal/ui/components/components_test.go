// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Moham3dabdalla/ai-tui/internal/model"
	"github.com/Moham3dabdalla/ai-tui/internal/ui/styles"
)

func testTheme() *styles.Theme {
	dark := true
	th := styles.NewTheme(&dark)
	th.SetSize(120, 40)
	return th
}

// =============================================================================
// CONFIRM DIALOG TESTS
// =============================================================================

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmDialog_YesKey(t *testing.T) {
	var d ConfirmDialog
	d.Open("Delete conversation", "Are you sure?", "delete")
	if !d.IsOpen() {
		t.Fatal("dialog not open after Open")
	}

	cmd := d.Update(key("y"))
	if cmd == nil {
		t.Fatal("no command after answering")
	}
	msg, ok := cmd().(ConfirmResultMsg)
	if !ok {
		t.Fatalf("command produced %T, want ConfirmResultMsg", cmd())
	}
	if !msg.Confirmed || msg.Tag != "delete" {
		t.Errorf("result = %+v, want confirmed delete", msg)
	}
	if d.IsOpen() {
		t.Error("dialog still open after answer")
	}
}

func TestConfirmDialog_EscCancels(t *testing.T) {
	var d ConfirmDialog
	d.Open("Clear all", "Delete everything?", "clear")

	cmd := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	msg := cmd().(ConfirmResultMsg)
	if msg.Confirmed {
		t.Error("esc must cancel")
	}
}

func TestConfirmDialog_EnterDefaultsToNo(t *testing.T) {
	var d ConfirmDialog
	d.Open("Delete", "Sure?", "delete")

	cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg := cmd().(ConfirmResultMsg)
	if msg.Confirmed {
		t.Error("enter without toggling must answer No")
	}
}

func TestConfirmDialog_ToggleThenEnter(t *testing.T) {
	var d ConfirmDialog
	d.Open("Delete", "Sure?", "delete")

	if cmd := d.Update(tea.KeyMsg{Type: tea.KeyTab}); cmd != nil {
		t.Fatal("toggle must not answer")
	}
	msg := d.Update(tea.KeyMsg{Type: tea.KeyEnter})().(ConfirmResultMsg)
	if !msg.Confirmed {
		t.Error("enter after toggle must answer Yes")
	}
}

func TestConfirmDialog_ViewOnlyWhenOpen(t *testing.T) {
	var d ConfirmDialog
	if d.View(testTheme()) != "" {
		t.Error("closed dialog rendered content")
	}
	d.Open("T", "P", "tag")
	if d.View(testTheme()) == "" {
		t.Error("open dialog rendered nothing")
	}
}

// =============================================================================
// CODE BLOCK TESTS
// =============================================================================

func TestCodeBlock_RenderContainsCode(t *testing.T) {
	cb := NewCodeBlock("go", "package main\n\nfunc main() {}\n")
	out := cb.Render(testTheme())
	if !strings.Contains(out, "main") {
		t.Error("rendered block lost the code text")
	}
	if !strings.Contains(out, "go") {
		t.Error("rendered block lost the language badge")
	}
	if !strings.Contains(out, "copy") {
		t.Error("rendered block has no copy affordance")
	}
}

func TestCodeBlock_CopiedLabel(t *testing.T) {
	cb := NewCodeBlock("go", "x := 1")
	cb.Copied = true
	out := cb.Render(testTheme())
	if !strings.Contains(out, "Copied!") {
		t.Error("copied block must show Copied!")
	}
}

func TestExtractFences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantCode string
		wantLang string
		wantOK   bool
	}{
		{
			name:     "fenced block",
			text:     "before\n```python\nprint(1)\n```\nafter",
			wantCode: "print(1)",
			wantLang: "python",
			wantOK:   true,
		},
		{
			name:   "no fence",
			text:   "just text",
			wantOK: false,
		},
		{
			name:     "unclosed fence",
			text:     "```go\nx := 1",
			wantCode: "x := 1",
			wantLang: "go",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, lang, ok := ExtractFences(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && (code != tt.wantCode || lang != tt.wantLang) {
				t.Errorf("got (%q, %q), want (%q, %q)", code, lang, tt.wantCode, tt.wantLang)
			}
		})
	}
}

// =============================================================================
// SIDEBAR TESTS
// =============================================================================

func TestSidebar_EmptyState(t *testing.T) {
	sb := Sidebar{Width: 30, Height: 20}
	out := sb.Render(testTheme(), nil, "")
	if !strings.Contains(out, "No conversations yet") {
		t.Error("empty sidebar must show placeholder")
	}
}

func TestSidebar_ListsTitles(t *testing.T) {
	a := model.NewConversation("m")
	a.Title = "First chat"
	b := model.NewConversation("m")
	b.Title = "Second chat"

	sb := Sidebar{Width: 30, Height: 20}
	out := sb.Render(testTheme(), []*model.Conversation{b, a}, a.ID)
	if !strings.Contains(out, "First chat") || !strings.Contains(out, "Second chat") {
		t.Error("sidebar must list all conversation titles")
	}
}

func TestSidebar_ZeroWidthCollapses(t *testing.T) {
	sb := Sidebar{Width: 0, Height: 20}
	if out := sb.Render(testTheme(), nil, ""); out != "" {
		t.Error("zero-width sidebar must render nothing")
	}
}

// =============================================================================
// TYPING INDICATOR TESTS
// =============================================================================

func TestTypingIndicator_Lifecycle(t *testing.T) {
	ti := NewTypingIndicator()
	if ti.Active() {
		t.Fatal("indicator active before Start")
	}
	if cmd := ti.Start(); cmd == nil {
		t.Fatal("Start must return a tick command")
	}
	if !ti.Active() {
		t.Fatal("indicator inactive after Start")
	}
	if ti.View(testTheme()) == "" {
		t.Error("active indicator rendered nothing")
	}

	ti.Stop()
	if ti.Active() {
		t.Error("indicator active after Stop")
	}
	if ti.View(testTheme()) != "" {
		t.Error("stopped indicator still rendered")
	}
}

// =============================================================================
// MESSAGE VIEW TESTS
// =============================================================================

func TestMessageView_ImagePlaceholder(t *testing.T) {
	msg := model.NewImageMessage(model.RoleUser, "data:image/png;base64,AAAA")
	out := MessageView{Message: msg, MaxWidth: 80}.Render(testTheme())
	if !strings.Contains(out, "[image]") {
		t.Error("image message must render the placeholder")
	}
	if strings.Contains(out, "base64") {
		t.Error("image data must not leak into the thread")
	}
}

func TestMessageView_UserText(t *testing.T) {
	msg := model.NewUserMessage("hello world")
	out := MessageView{Message: msg, MaxWidth: 80}.Render(testTheme())
	if !strings.Contains(out, "hello world") {
		t.Error("user text lost in rendering")
	}
	if !strings.Contains(out, "You") {
		t.Error("user label missing")
	}
}

func TestWrapPlain(t *testing.T) {
	out := wrapPlain("aaaa bbbb cccc", 9)
	for _, line := range strings.Split(out, "\n") {
		if len([]rune(line)) > 9 {
			t.Errorf("line %q exceeds width", line)
		}
	}
}
