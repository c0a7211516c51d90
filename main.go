// ai-tui - A terminal chat client for Google Gemini.
//
// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Moham3dabdalla/ai-tui/internal/config"
	"github.com/Moham3dabdalla/ai-tui/internal/gemini"
	"github.com/Moham3dabdalla/ai-tui/internal/logging"
	"github.com/Moham3dabdalla/ai-tui/internal/storage"
	"github.com/Moham3dabdalla/ai-tui/internal/store"
	"github.com/Moham3dabdalla/ai-tui/internal/ui/chat"
	"github.com/Moham3dabdalla/ai-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--version", "-v":
			fmt.Printf("ai-tui %s (%s)\n", Version, GitCommit)
			return nil
		case "--help", "-h":
			printUsage()
			return nil
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, closeLog := logging.New(cfg.DataDir, os.Getenv("AI_TUI_DEBUG") != "")
	defer closeLog()
	log.Info().Str("version", Version).Str("storage", cfg.Storage).Msg("starting")

	kv, err := storage.Open(cfg.Storage, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer kv.Close()

	st := store.New(kv, log)
	if err := st.Load(); err != nil {
		return fmt.Errorf("load conversations: %w", err)
	}

	client := gemini.NewClient(&gemini.ClientConfig{
		BaseURL: cfg.APIURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.RequestTimeout(),
	}, log)

	theme := styles.NewTheme(darkOverride(kv, cfg))

	m := chat.New(chat.Deps{
		Store:  st,
		Client: client,
		KV:     kv,
		Config: cfg,
		Theme:  theme,
		Log:    log,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())

	// The store notifies synchronously on the mutating goroutine, and every
	// user-driven mutation runs inside Update on the event loop itself. A
	// blocking p.Send here would deadlock the loop against its own message
	// queue, so the forwarding hops to a fresh goroutine. Projections are
	// full-replace reads of store state, so delivery order does not matter.
	st.Subscribe(func(c store.Change) {
		go p.Send(chat.StoreChangedMsg{Change: c})
	})

	if cfgPath, err := config.Path(); err == nil {
		watcher, err := config.NewWatcher(cfgPath, func(next *config.Config) {
			p.Send(chat.ConfigReloadedMsg{Config: next})
		}, log)
		if err == nil {
			if err := watcher.Watch(); err != nil {
				log.Warn().Err(err).Msg("config watcher unavailable")
			} else {
				defer watcher.Close()
			}
		} else {
			log.Warn().Err(err).Msg("config watcher unavailable")
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// darkOverride reads the persisted theme choice, or nil to follow the
// terminal background.
func darkOverride(kv storage.KV, cfg *config.Config) *bool {
	switch cfg.Theme {
	case "dark":
		v := true
		return &v
	case "light":
		v := false
		return &v
	}

	raw, ok, err := kv.Get(storage.KeyIsDarkTheme)
	if err != nil || !ok {
		return nil
	}
	isDark, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &isDark
}

func printUsage() {
	fmt.Println(`ai-tui - terminal chat client for Google Gemini

Usage:
  ai-tui              start the chat interface
  ai-tui --version    print version information
  ai-tui --help       show this help

Configuration lives at ~/.ai-tui/config.toml. Set GEMINI_API_KEY in the
environment to override the configured API key.`)
}
