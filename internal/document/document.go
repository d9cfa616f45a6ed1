// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package document holds the in-memory representation of a parsed document.
package document

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrStructureChanged is returned by Merge when the document's code spans no
// longer line up with the preceding extraction.
var ErrStructureChanged = errors.New("document: code spans changed between extraction and merge")

// SpanKind distinguishes prose from evaluable code.
type SpanKind int

const (
	Text SpanKind = iota
	Code
)

// String returns the string representation of a SpanKind.
func (k SpanKind) String() string {
	switch k {
	case Text:
		return "TEXT"
	case Code:
		return "CODE"
	}
	return "UNKNOWN"
}

// Span is a typed substring of one line. Start and End are a half-open
// column interval kept for diagnostics; reconstruction only depends on the
// order spans sort into.
type Span struct {
	Kind    SpanKind
	Start   int
	End     int
	Content string
}

// Line is one source line: a 1-based number plus its spans in the order the
// scanner produced them.
type Line struct {
	Number int
	Spans  []Span
}

// BlockID identifies a code span's position in one extraction pass. IDs are
// dense, zero-based, and not stable across re-parses.
type BlockID int

// CodeBlockView is the read-only projection of a code span handed to an
// evaluator.
type CodeBlockView struct {
	ID      BlockID
	Content string
}

// CodeBlockUpdate declares a replacement for one code span. Any BlockID
// absent from an update set means "leave that span unchanged".
type CodeBlockUpdate struct {
	ID      BlockID
	Content string
}

// Document is an ordered sequence of lines. Reconstructing an unmodified
// document reproduces the scanned input byte for byte.
type Document struct {
	Lines []Line

	extracted     int
	hasExtraction bool
}

// CodeBlocks extracts every code span in traversal order (lines in order,
// spans in storage order), assigning sequential BlockIDs from 0. The count
// is recorded so a later Merge can verify the document was not restructured.
func (d *Document) CodeBlocks() []CodeBlockView {
	var views []CodeBlockView
	for _, line := range d.Lines {
		for _, span := range line.Spans {
			if span.Kind == Code {
				views = append(views, CodeBlockView{
					ID:      BlockID(len(views)),
					Content: span.Content,
				})
			}
		}
	}
	d.extracted = len(views)
	d.hasExtraction = true
	return views
}

// Merge writes updates back into the document's code spans, keyed by the
// BlockIDs assigned during the last CodeBlocks call. Spans without a
// matching update keep their content. A code-span count that differs from
// the extraction count means the document was mutated in between; that is a
// broken invariant and Merge refuses to guess.
func (d *Document) Merge(updates []CodeBlockUpdate) error {
	if !d.hasExtraction {
		return fmt.Errorf("%w: merge without extraction", ErrStructureChanged)
	}

	byID := make(map[BlockID]string, len(updates))
	for _, u := range updates {
		byID[u.ID] = u.Content
	}

	next := BlockID(0)
	for i := range d.Lines {
		for j := range d.Lines[i].Spans {
			span := &d.Lines[i].Spans[j]
			if span.Kind != Code {
				continue
			}
			if content, ok := byID[next]; ok {
				span.Content = content
			}
			next++
		}
	}

	if int(next) != d.extracted {
		return fmt.Errorf("%w: extracted %d, merged over %d", ErrStructureChanged, d.extracted, next)
	}
	return nil
}

// Reconstruct renders the document back to text. Spans are stably sorted by
// start column per line, concatenated, and lines joined with a single
// newline.
func (d *Document) Reconstruct() string {
	var sb strings.Builder
	for i, line := range d.Lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		spans := make([]Span, len(line.Spans))
		copy(spans, line.Spans)
		sort.SliceStable(spans, func(a, b int) bool {
			return spans[a].Start < spans[b].Start
		})
		for _, span := range spans {
			sb.WriteString(span.Content)
		}
	}
	return sb.String()
}
