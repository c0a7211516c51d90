// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for ai-tui.
//
// Configuration is read from ~/.ai-tui/config.toml with sensible defaults
// and a GEMINI_API_KEY environment override. A file watcher reloads the
// config while the app runs so key or model changes apply without a restart.
package config
