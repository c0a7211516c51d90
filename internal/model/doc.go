// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// A Conversation is a titled, ordered thread of Messages bound to a
// generation model identifier. Messages are append-only: the only removal
// path is deleting the whole owning conversation. Both types serialize to
// JSON in the exact shape the persistence layer stores, so a round trip
// through encoding/json reproduces an identical ordered sequence.
package model
