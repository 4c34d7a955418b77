package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/net/html"
)

// NewMarkdownRenderer builds a glamour renderer matching the theme, used
// for the --long feature description view. Returns nil when the terminal
// renderer cannot be constructed; callers fall back to plain text.
func NewMarkdownRenderer(theme Theme, wrap int) *glamour.TermRenderer {
	if wrap <= 0 {
		wrap = 100
	}
	var renderer *glamour.TermRenderer
	if theme.IsDark {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(wrap),
		)
	} else {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithStandardStyle("light"),
			glamour.WithWordWrap(wrap),
		)
	}
	return renderer
}

// RenderMarkdown renders s through the glamour renderer, falling back to
// the input on any error.
func RenderMarkdown(renderer *glamour.TermRenderer, s string) string {
	if renderer == nil {
		return s
	}
	out, err := renderer.Render(s)
	if err != nil {
		return s
	}
	return strings.TrimSpace(out)
}

// StripHTML flattens the inline HTML markup caniuse embeds in feature
// descriptions ("<code>", "<a href>", entities) into plain text. Malformed
// markup is not an error; the tokenizer consumes whatever it can.
func StripHTML(s string) string {
	if !strings.ContainsRune(s, '<') && !strings.ContainsRune(s, '&') {
		return s
	}

	var sb strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			sb.Write(tokenizer.Text())
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
