// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gemini provides the HTTP client for the Gemini generateContent API.
//
// Each call is stateless: only the latest user utterance is sent, never the
// conversation history. That matches the product's single-turn request shape
// and keeps the client trivial; callers render FallbackReply on any failure.
package gemini
