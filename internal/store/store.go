// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Moham3dabdalla/ai-tui/internal/model"
	"github.com/Moham3dabdalla/ai-tui/internal/storage"
)

// =============================================================================
// CHANGE NOTIFICATION
// =============================================================================

// Region names a view region that must refresh after a mutation.
type Region int

const (
	// RegionSidebar covers the conversation list.
	RegionSidebar Region = 1 << iota
	// RegionThread covers the message thread of the current conversation.
	RegionThread

	// RegionAll covers every region.
	RegionAll = RegionSidebar | RegionThread
)

// Change describes what a mutation touched.
type Change struct {
	Regions Region
}

// Affects reports whether the change touches the given region.
func (c Change) Affects(r Region) bool {
	return c.Regions&r != 0
}

// =============================================================================
// STORE
// =============================================================================

// Store owns the conversation list (newest first) and the current selection,
// persisting every mutation synchronously to the backing KV.
type Store struct {
	mu sync.Mutex

	kv  storage.KV
	log zerolog.Logger

	conversations []*model.Conversation
	currentID     string

	listeners []func(Change)
}

// New creates a Store over kv. Call Load before use to hydrate persisted
// state.
func New(kv storage.KV, log zerolog.Logger) *Store {
	return &Store{
		kv:  kv,
		log: log.With().Str("component", "store").Logger(),
	}
}

// Subscribe registers fn to be called after every mutation. Callbacks run
// synchronously on the mutating goroutine while no locks are held.
func (s *Store) Subscribe(fn func(Change)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Store) notify(c Change) {
	s.mu.Lock()
	listeners := make([]func(Change), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(c)
	}
}

// =============================================================================
// HYDRATION
// =============================================================================

// Load hydrates the store from the KV, repairing a dangling current ID.
// A missing or corrupt snapshot yields an empty store rather than an error;
// the corrupt case is logged and the snapshot rewritten on the next mutation.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.kv.Get(storage.KeyConversations)
	if err != nil {
		return err
	}
	if ok && raw != "" {
		var convs []*model.Conversation
		if err := json.Unmarshal([]byte(raw), &convs); err != nil {
			s.log.Error().Err(err).Msg("corrupt conversation snapshot; starting empty")
			convs = nil
		}
		s.conversations = convs
	}

	current, ok, err := s.kv.Get(storage.KeyCurrentConversationID)
	if err != nil {
		return err
	}
	if ok {
		s.currentID = current
	}

	// INVARIANT: currentID is empty or resolves to a listed conversation.
	if repaired := s.repairCurrentLocked(); repaired {
		if err := s.persistCurrentLocked(); err != nil {
			return err
		}
	}

	s.log.Info().
		Int("conversations", len(s.conversations)).
		Str("current", s.currentID).
		Msg("store hydrated")
	return nil
}

// repairCurrentLocked enforces the current-ID invariant. Returns true if the
// selection changed. Caller must hold s.mu.
func (s *Store) repairCurrentLocked() bool {
	if s.currentID == "" {
		if len(s.conversations) == 0 {
			return false
		}
		s.currentID = s.conversations[0].ID
		return true
	}
	for _, c := range s.conversations {
		if c.ID == s.currentID {
			return false
		}
	}
	if len(s.conversations) > 0 {
		s.currentID = s.conversations[0].ID
	} else {
		s.currentID = ""
	}
	return true
}

// =============================================================================
// READ OPERATIONS
// =============================================================================

// Conversations returns a snapshot of the list, newest first.
func (s *Store) Conversations() []*model.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Conversation, len(s.conversations))
	for i, c := range s.conversations {
		out[i] = c.Clone()
	}
	return out
}

// CurrentID returns the selected conversation ID, or "" when none exists.
func (s *Store) CurrentID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentID
}

// Current returns a snapshot of the selected conversation, or nil.
func (s *Store) Current() *model.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c := s.findLocked(s.currentID); c != nil {
		return c.Clone()
	}
	return nil
}

// Get returns a snapshot of the conversation with the given ID, or nil.
func (s *Store) Get(id string) *model.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c := s.findLocked(id); c != nil {
		return c.Clone()
	}
	return nil
}

// Count returns the number of conversations.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conversations)
}

func (s *Store) findLocked(id string) *model.Conversation {
	if id == "" {
		return nil
	}
	for _, c := range s.conversations {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// =============================================================================
// MUTATIONS
// =============================================================================

// Create prepends a new empty conversation for the given model, selects it,
// and persists. Returns a snapshot of the new conversation.
func (s *Store) Create(modelName string) (*model.Conversation, error) {
	s.mu.Lock()

	conv := model.NewConversation(modelName)
	s.conversations = append([]*model.Conversation{conv}, s.conversations...)
	s.currentID = conv.ID

	if err := s.persistAllLocked(); err != nil {
		// Undo so in-memory state matches disk.
		s.conversations = s.conversations[1:]
		s.repairCurrentLocked()
		s.mu.Unlock()
		return nil, err
	}
	snapshot := conv.Clone()
	s.mu.Unlock()

	s.notify(Change{Regions: RegionAll})
	return snapshot, nil
}

// Select makes the conversation with the given ID current and persists the
// selection. Selecting a missing ID returns ErrNotFound.
func (s *Store) Select(id string) error {
	s.mu.Lock()

	if s.findLocked(id) == nil {
		s.mu.Unlock()
		return ErrNotFound
	}
	if s.currentID == id {
		s.mu.Unlock()
		return nil
	}
	prev := s.currentID
	s.currentID = id
	if err := s.persistCurrentLocked(); err != nil {
		s.currentID = prev
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.notify(Change{Regions: RegionAll})
	return nil
}

// Append adds msg to the conversation with the given ID and persists. The
// first message also derives the conversation title. A missing ID returns
// ErrNotFound so callers can drop replies addressed to a conversation that
// was deleted while the request was in flight.
func (s *Store) Append(id string, msg *model.Message) error {
	s.mu.Lock()

	conv := s.findLocked(id)
	if conv == nil {
		s.mu.Unlock()
		s.log.Debug().Str("conversation", id).Msg("append target gone; message dropped")
		return ErrNotFound
	}
	prevTitle := conv.Title
	conv.Append(msg)
	if err := s.persistConversationsLocked(); err != nil {
		conv.Messages = conv.Messages[:len(conv.Messages)-1]
		conv.Title = prevTitle
		s.mu.Unlock()
		return err
	}
	isCurrent := id == s.currentID
	s.mu.Unlock()

	regions := RegionSidebar // title or ordering may have changed
	if isCurrent {
		regions = RegionAll
	}
	s.notify(Change{Regions: regions})
	return nil
}

// Delete removes the conversation with the given ID and persists, repairing
// the selection if the deleted conversation was current. Deleting the last
// conversation leaves an empty list and no selection.
func (s *Store) Delete(id string) error {
	s.mu.Lock()

	idx := -1
	for i, c := range s.conversations {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}

	removed := s.conversations[idx]
	prevCurrent := s.currentID
	s.conversations = append(s.conversations[:idx], s.conversations[idx+1:]...)
	s.repairCurrentLocked()

	if err := s.persistAllLocked(); err != nil {
		s.conversations = append(s.conversations[:idx],
			append([]*model.Conversation{removed}, s.conversations[idx:]...)...)
		s.currentID = prevCurrent
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.notify(Change{Regions: RegionAll})
	return nil
}

// ClearAll removes every conversation and the selection, erasing the
// persisted snapshot.
func (s *Store) ClearAll() error {
	s.mu.Lock()

	prevConvs := s.conversations
	prevCurrent := s.currentID
	s.conversations = nil
	s.currentID = ""

	// Erase the snapshot rather than writing an empty list.
	err := s.kv.Delete(storage.KeyConversations)
	if err == nil {
		err = s.kv.Delete(storage.KeyCurrentConversationID)
	}
	if err != nil {
		s.conversations = prevConvs
		s.currentID = prevCurrent
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.notify(Change{Regions: RegionAll})
	return nil
}

// =============================================================================
// PERSISTENCE
// =============================================================================

func (s *Store) persistConversationsLocked() error {
	data, err := json.Marshal(s.conversations)
	if err != nil {
		return err
	}
	return s.kv.Set(storage.KeyConversations, string(data))
}

func (s *Store) persistCurrentLocked() error {
	return s.kv.Set(storage.KeyCurrentConversationID, s.currentID)
}

func (s *Store) persistAllLocked() error {
	if err := s.persistConversationsLocked(); err != nil {
		return err
	}
	return s.persistCurrentLocked()
}
