// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/Moham3dabdalla/ai-tui/internal/ui/styles"
)

// =============================================================================
// CODE BLOCK RENDERER
// =============================================================================

// CodeBlock renders a code message with syntax highlighting and a copy
// affordance. Copied flips the footer label to "Copied!"; the chat model
// resets it about two seconds after a copy.
type CodeBlock struct {
	Language string
	Code     string
	MaxWidth int
	Copied   bool
}

// NewCodeBlock creates a code block with the default width.
func NewCodeBlock(language, code string) CodeBlock {
	return CodeBlock{
		Language: language,
		Code:     code,
		MaxWidth: 80,
	}
}

// Render renders the block: language badge, highlighted code, copy footer.
func (c CodeBlock) Render(theme *styles.Theme) string {
	code := strings.TrimRight(c.Code, "\n")

	language := c.Language
	if language == "" {
		language = detectLanguage(code)
	}

	highlighted := highlightCode(code, language, theme.IsDark)

	var header string
	if language != "" {
		header = theme.CodeLangBadge.Render(language) + "\n"
	}

	footer := "\n" + theme.CodeCopyHint.Render("ctrl+y to copy")
	if c.Copied {
		footer = "\n" + theme.CodeCopiedTag.Render("Copied!")
	}

	maxWidth := c.MaxWidth - 4
	if maxWidth < 20 {
		maxWidth = 20
	}

	return theme.CodeBlock.
		MaxWidth(maxWidth).
		Render(header + highlighted + footer)
}

// =============================================================================
// MARKDOWN CODE FENCES
// =============================================================================

// ExtractFences returns the code inside the first ``` fence of text, plus its
// language tag, or ("", "", false) when text has no fence. Used to offer the
// copy affordance on fenced code inside plain text replies.
func ExtractFences(text string) (code, language string, ok bool) {
	lines := strings.Split(text, "\n")
	var inFence bool
	var fenceLines []string

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			if inFence {
				return strings.Join(fenceLines, "\n"), language, true
			}
			language = strings.TrimSpace(strings.TrimPrefix(line, "```"))
			inFence = true
			continue
		}
		if inFence {
			fenceLines = append(fenceLines, line)
		}
	}

	if inFence && len(fenceLines) > 0 {
		return strings.Join(fenceLines, "\n"), language, true
	}
	return "", "", false
}

// =============================================================================
// SYNTAX HIGHLIGHTING (Chroma-based)
// =============================================================================

// highlightCode applies ANSI-safe syntax highlighting via chroma.
func highlightCode(code, language string, dark bool) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	styleName := "monokai"
	if !dark {
		styleName = "monokailight"
	}
	style := chromaStyles.Get(styleName)
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return buf.String()
}

// detectLanguage attempts to detect the language of the given code.
func detectLanguage(code string) string {
	if lexer := lexers.Analyse(code); lexer != nil {
		return lexer.Config().Name
	}
	return ""
}

// RenderInlineCode renders `code` spans with a subtle background.
func RenderInlineCode(code string) string {
	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.Cyan).
		Padding(0, 1).
		Render(code)
}
