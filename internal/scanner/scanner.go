// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package scanner splits raw text into typed document spans.
//
// Two strategies exist and the caller picks one up front: Plain treats every
// line as code, Markdown tracks fenced blocks and inline backticks. Neither
// is auto-detected here.
package scanner

import (
	"strings"

	"nickandperla.net/equals/internal/document"
)

// Scanner turns raw text into a Document.
type Scanner interface {
	Scan(input string) *document.Document
}

// Plain treats every line, including empty ones, as a single whole-line code
// span.
type Plain struct{}

// NewPlain creates a plain (whole-line-is-code) scanner.
func NewPlain() Plain {
	return Plain{}
}

// Scan parses input where each line is one code span.
func (Plain) Scan(input string) *document.Document {
	raw := strings.Split(input, "\n")
	lines := make([]document.Line, len(raw))
	for i, text := range raw {
		lines[i] = document.Line{
			Number: i + 1,
			Spans: []document.Span{{
				Kind:    document.Code,
				Start:   0,
				End:     len(text),
				Content: text,
			}},
		}
	}
	return &document.Document{Lines: lines}
}
