// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across ai-tui: atomic file
// writes for crash-safe persistence and width-aware string truncation for
// terminal layout.
package util
