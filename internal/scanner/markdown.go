// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package scanner

import (
	"strings"

	"nickandperla.net/equals/internal/document"
)

const fenceToken = "```"

// Markdown scans Markdown-aware: fenced blocks carry state across lines,
// inline backticks carry state within one line.
type Markdown struct{}

// NewMarkdown creates a Markdown-aware scanner.
func NewMarkdown() Markdown {
	return Markdown{}
}

// Scan parses input as Markdown. Fence lines (including any language tag)
// are prose, lines inside a fence are code, and inline `code` runs become
// code spans with the delimiters attributed to the surrounding text.
func (Markdown) Scan(input string) *document.Document {
	raw := strings.Split(input, "\n")
	lines := make([]document.Line, len(raw))
	inFence := false
	for i, text := range raw {
		lines[i] = scanLine(i+1, text, &inFence)
	}
	return &document.Document{Lines: lines}
}

func scanLine(number int, text string, inFence *bool) document.Line {
	if isFence(text) {
		*inFence = !*inFence
		return wholeLine(number, text, document.Text)
	}
	if *inFence {
		return wholeLine(number, text, document.Code)
	}
	return scanInline(number, text)
}

func isFence(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), fenceToken)
}

func wholeLine(number int, text string, kind document.SpanKind) document.Line {
	return document.Line{
		Number: number,
		Spans: []document.Span{{
			Kind:    kind,
			Start:   0,
			End:     len([]rune(text)),
			Content: text,
		}},
	}
}

// scanInline walks one line rune by rune, toggling between a pending text
// buffer and a pending code buffer at each backtick. Columns are rune
// offsets.
func scanInline(number int, text string) document.Line {
	var spans []document.Span
	var buf strings.Builder
	bufStart := 0
	col := 0
	inside := false

	for _, r := range text {
		if r == '`' {
			if inside {
				// Close the code span; the delimiter belongs to the
				// text side.
				spans = append(spans, document.Span{
					Kind:    document.Code,
					Start:   bufStart,
					End:     col,
					Content: buf.String(),
				})
				buf.Reset()
				inside = false
				bufStart = col
				buf.WriteRune('`')
			} else {
				buf.WriteRune('`')
				spans = append(spans, document.Span{
					Kind:    document.Text,
					Start:   bufStart,
					End:     col + 1,
					Content: buf.String(),
				})
				buf.Reset()
				inside = true
				bufStart = col + 1
			}
		} else {
			buf.WriteRune(r)
		}
		col++
	}

	if inside {
		// Unterminated inline code: the whole line degrades to prose so no
		// phantom code span escapes.
		return wholeLine(number, text, document.Text)
	}
	if buf.Len() > 0 {
		spans = append(spans, document.Span{
			Kind:    document.Text,
			Start:   bufStart,
			End:     col,
			Content: buf.String(),
		})
	}

	return document.Line{Number: number, Spans: spans}
}
