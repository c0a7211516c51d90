// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"
	"time"
)

// =============================================================================
// TITLE DERIVATION TESTS
// =============================================================================

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "short content kept verbatim",
			content: "Hello there",
			want:    "Hello there",
		},
		{
			name:    "exactly thirty runes kept verbatim",
			content: strings.Repeat("a", 30),
			want:    strings.Repeat("a", 30),
		},
		{
			name:    "long content truncated to thirty plus ellipsis",
			content: strings.Repeat("a", 31),
			want:    strings.Repeat("a", 30) + "...",
		},
		{
			name:    "multi-byte runes counted as characters",
			content: strings.Repeat("é", 40),
			want:    strings.Repeat("é", 30) + "...",
		},
		{
			name:    "empty content",
			content: "",
			want:    "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveTitle(tc.content)
			if got != tc.want {
				t.Errorf("DeriveTitle(%q) = %q, want %q", tc.content, got, tc.want)
			}
		})
	}
}

func TestConversation_AppendDerivesTitleOnce(t *testing.T) {
	conv := NewConversation("gemini-2.0-flash")
	if conv.Title != DefaultTitle {
		t.Fatalf("new conversation title = %q, want %q", conv.Title, DefaultTitle)
	}

	first := "What is the capital of France and why is it famous?"
	conv.Append(NewUserMessage(first))

	wantTitle := string([]rune(first)[:30]) + "..."
	if conv.Title != wantTitle {
		t.Errorf("title after first message = %q, want %q", conv.Title, wantTitle)
	}

	// The second message must not rewrite the title.
	conv.Append(NewAIMessage("Paris."))
	if conv.Title != wantTitle {
		t.Errorf("title changed after second message: %q", conv.Title)
	}
}

func TestConversation_AppendImageKeepsPlaceholderTitle(t *testing.T) {
	conv := NewConversation("gemini-2.0-flash")
	conv.Append(NewImageMessage(RoleUser, "data:image/png;base64,iVBORw0KGgo="))

	if conv.Title != DefaultTitle {
		t.Errorf("title after image first message = %q, want %q", conv.Title, DefaultTitle)
	}
	if strings.Contains(conv.Title, "base64") {
		t.Errorf("data URL leaked into the title: %q", conv.Title)
	}
}

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestMessage_EffectiveKind(t *testing.T) {
	msg := NewUserMessage("hi")
	if msg.EffectiveKind() != KindText {
		t.Errorf("EffectiveKind() = %q, want %q", msg.EffectiveKind(), KindText)
	}

	// Older snapshots omit the type field for plain text.
	msg.Kind = ""
	if msg.EffectiveKind() != KindText {
		t.Errorf("EffectiveKind() with empty kind = %q, want %q", msg.EffectiveKind(), KindText)
	}

	code := NewCodeMessage(RoleAI, "package main", "go")
	if code.EffectiveKind() != KindCode {
		t.Errorf("EffectiveKind() = %q, want %q", code.EffectiveKind(), KindCode)
	}
	if code.Language != "go" {
		t.Errorf("Language = %q, want %q", code.Language, "go")
	}
}

func TestMessage_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		msg := NewUserMessage("x")
		if seen[msg.ID] {
			t.Fatalf("duplicate message ID %q", msg.ID)
		}
		seen[msg.ID] = true
	}
}

// =============================================================================
// SERIALIZATION TESTS
// =============================================================================

func TestConversation_JSONRoundTrip(t *testing.T) {
	conv := NewConversation("gemini-2.0-flash")
	conv.Append(NewUserMessage("first"))
	conv.Append(NewAIMessage("second"))
	conv.Append(NewCodeMessage(RoleAI, "fmt.Println(42)", "go"))
	conv.Append(NewImageMessage(RoleUser, "data:image/png;base64,AAAA"))

	data, err := json.Marshal([]*Conversation{conv})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded []*Conversation
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if len(decoded) != 1 {
		t.Fatalf("decoded %d conversations, want 1", len(decoded))
	}
	got := decoded[0]
	if got.ID != conv.ID || got.Title != conv.Title || got.Model != conv.Model {
		t.Errorf("metadata mismatch: got %+v", got)
	}
	if len(got.Messages) != len(conv.Messages) {
		t.Fatalf("decoded %d messages, want %d", len(got.Messages), len(conv.Messages))
	}
	for i, msg := range got.Messages {
		if msg.ID != conv.Messages[i].ID {
			t.Errorf("message %d out of order: got %q, want %q", i, msg.ID, conv.Messages[i].ID)
		}
		if msg.Content != conv.Messages[i].Content {
			t.Errorf("message %d content = %q, want %q", i, msg.Content, conv.Messages[i].Content)
		}
	}
}

func TestConversation_Clone(t *testing.T) {
	conv := NewConversation("gemini-2.0-flash")
	conv.Append(NewUserMessage("original"))

	clone := conv.Clone()
	clone.Messages[0].Content = "mutated"
	clone.Append(NewAIMessage("extra"))

	if conv.Messages[0].Content != "original" {
		t.Errorf("clone mutation leaked into original: %q", conv.Messages[0].Content)
	}
	if conv.MessageCount() != 1 {
		t.Errorf("original message count = %d, want 1", conv.MessageCount())
	}
}

func TestNewConversationID_TimeBased(t *testing.T) {
	before := time.Now().UnixMilli()
	id := NewConversationID()
	after := time.Now().UnixMilli()

	ms, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		t.Fatalf("ID %q is not numeric: %v", id, err)
	}
	if ms < before || ms > after {
		t.Errorf("ID %q outside creation window [%d, %d]", id, before, after)
	}
}
