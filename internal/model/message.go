// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role identifies the author of a message.
type Role string

const (
	RoleUser Role = "user"
	RoleAI   Role = "ai"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAI:
		return "AI"
	default:
		return string(r)
	}
}

// =============================================================================
// KIND TYPE
// =============================================================================

// Kind governs how a message is rendered, not how it is stored.
type Kind string

const (
	KindText  Kind = "text"
	KindCode  Kind = "code"
	KindImage Kind = "image"
)

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single authored turn in a conversation.
type Message struct {
	// Identity
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`

	// Content. For KindText this is plain text, for KindCode source code,
	// and for KindImage a data URL or image reference.
	Kind    Kind   `json:"type,omitempty"`
	Content string `json:"content"`

	// Language is meaningful only when Kind is KindCode.
	Language string `json:"language,omitempty"`
}

// NewMessage creates a new message with a generated ID.
func NewMessage(role Role, kind Kind, content string) *Message {
	return &Message{
		ID:        "msg_" + uuid.NewString(),
		Role:      role,
		Kind:      kind,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewUserMessage creates a new plain-text user message.
func NewUserMessage(content string) *Message {
	return NewMessage(RoleUser, KindText, content)
}

// NewAIMessage creates a new plain-text assistant message.
func NewAIMessage(content string) *Message {
	return NewMessage(RoleAI, KindText, content)
}

// NewCodeMessage creates a new code message with an optional language tag.
func NewCodeMessage(role Role, code, language string) *Message {
	msg := NewMessage(role, KindCode, code)
	msg.Language = language
	return msg
}

// NewImageMessage creates a new image message carrying a data URL.
func NewImageMessage(role Role, dataURL string) *Message {
	return NewMessage(role, KindImage, dataURL)
}

// =============================================================================
// MESSAGE METHODS
// =============================================================================

// EffectiveKind returns the message kind, defaulting to KindText.
// Persisted snapshots from older versions omit the type field for plain
// text messages, so an empty Kind means text.
func (m *Message) EffectiveKind() Kind {
	if m.Kind == "" {
		return KindText
	}
	return m.Kind
}

// IsEmpty returns true if the message has no content.
func (m *Message) IsEmpty() bool {
	return len(m.Content) == 0
}

// Preview returns a truncated preview of the message content.
// Uses rune-based truncation to handle Unicode correctly.
func (m *Message) Preview(maxLen int) string {
	runes := []rune(m.Content)
	if len(runes) <= maxLen {
		return m.Content
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
