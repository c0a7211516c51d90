// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"strconv"
	"time"
)

// DefaultTitle is the placeholder title a conversation carries until its
// first message is appended.
const DefaultTitle = "New Chat"

// TitleMaxRunes is the maximum number of characters taken from the first
// user message when deriving a conversation title.
const TitleMaxRunes = 30

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds a complete chat thread with its metadata.
type Conversation struct {
	// Identity. The ID is a time-based opaque token assigned at creation
	// and stable for the conversation's lifetime; it is the sole lookup key.
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`

	// Messages in insertion order. Append-only: messages are never edited
	// or individually removed.
	Messages []*Message `json:"messages"`

	// Model is the generation backend selected at creation time.
	Model string `json:"model"`
}

// NewConversation creates a new empty conversation for the given model.
func NewConversation(model string) *Conversation {
	return &Conversation{
		ID:        NewConversationID(),
		Title:     DefaultTitle,
		CreatedAt: time.Now(),
		Messages:  make([]*Message, 0),
		Model:     model,
	}
}

// NewConversationID generates a time-based conversation identifier.
func NewConversationID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// Append adds a message to the conversation. When it is the first message
// ever, the conversation title is derived from its content. Image messages
// carry a data URL that must never leak into the sidebar, so a conversation
// opened with one keeps the placeholder title.
func (c *Conversation) Append(msg *Message) {
	c.Messages = append(c.Messages, msg)
	if len(c.Messages) == 1 && msg.EffectiveKind() != KindImage {
		c.Title = DeriveTitle(msg.Content)
	}
}

// LastMessage returns the most recent message, or nil if empty.
func (c *Conversation) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}

// MessageCount returns the number of messages.
func (c *Conversation) MessageCount() int {
	return len(c.Messages)
}

// IsEmpty returns true if there are no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.Messages) == 0
}

// =============================================================================
// TITLE DERIVATION
// =============================================================================

// DeriveTitle computes a conversation title from its first message:
// the first TitleMaxRunes characters, with "..." appended when the content
// is longer. Rune-based so multi-byte characters are never split.
func DeriveTitle(content string) string {
	runes := []rune(content)
	if len(runes) > TitleMaxRunes {
		return string(runes[:TitleMaxRunes]) + "..."
	}
	return content
}

// =============================================================================
// HELPERS
// =============================================================================

// Clone creates a deep copy of the conversation.
func (c *Conversation) Clone() *Conversation {
	clone := &Conversation{
		ID:        c.ID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		Model:     c.Model,
		Messages:  make([]*Message, len(c.Messages)),
	}
	for i, msg := range c.Messages {
		msgCopy := *msg
		clone.Messages[i] = &msgCopy
	}
	return clone
}
