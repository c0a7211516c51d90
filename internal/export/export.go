// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Moham3dabdalla/ai-tui/internal/model"
	"github.com/Moham3dabdalla/ai-tui/internal/util"
)

// ExportsDir is the subdirectory of the data directory where export files land.
const ExportsDir = "exports"

// =============================================================================
// CONVERSATION EXPORT
// =============================================================================

// Markdown writes the conversation as a Markdown document under
// dataDir/exports and returns the output path.
func Markdown(conv *model.Conversation, dataDir string) (string, error) {
	if conv == nil {
		return "", fmt.Errorf("conversation is nil")
	}
	if len(conv.Messages) == 0 {
		return "", fmt.Errorf("conversation has no messages")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", conv.Title))
	sb.WriteString(fmt.Sprintf("- **Model**: %s\n", conv.Model))
	sb.WriteString(fmt.Sprintf("- **Created**: %s\n", conv.CreatedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("- **Messages**: %d\n\n", len(conv.Messages)))
	sb.WriteString("---\n\n")

	for _, msg := range conv.Messages {
		sb.WriteString(fmt.Sprintf("## %s\n\n", msg.Role.DisplayName()))

		switch msg.EffectiveKind() {
		case model.KindCode:
			sb.WriteString(fmt.Sprintf("```%s\n%s\n```\n\n", msg.Language, msg.Content))
		case model.KindImage:
			// Data URLs are too large to inline; note the attachment instead.
			sb.WriteString("*[image attachment]*\n\n")
		default:
			sb.WriteString(msg.Content)
			sb.WriteString("\n\n")
		}
	}

	return writeExport(dataDir, conv, ".md", []byte(sb.String()))
}

// JSON writes the conversation as an indented JSON document under
// dataDir/exports and returns the output path.
func JSON(conv *model.Conversation, dataDir string) (string, error) {
	if conv == nil {
		return "", fmt.Errorf("conversation is nil")
	}
	if len(conv.Messages) == 0 {
		return "", fmt.Errorf("conversation has no messages")
	}

	content, err := json.MarshalIndent(conv, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal conversation: %w", err)
	}

	return writeExport(dataDir, conv, ".json", content)
}

func writeExport(dataDir string, conv *model.Conversation, ext string, content []byte) (string, error) {
	dir := filepath.Join(dataDir, ExportsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("conversation_%s_%s%s", sanitizeFilename(conv.Title), timestamp, ext)

	path := filepath.Join(dir, filename)
	if err := util.AtomicWriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// sanitizeFilename strips characters that are unsafe in filenames and caps
// the length so titles never produce unwieldy paths.
func sanitizeFilename(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			sb.WriteRune('_')
		}
	}
	s := strings.Trim(sb.String(), "_")
	if s == "" {
		s = "untitled"
	}
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
