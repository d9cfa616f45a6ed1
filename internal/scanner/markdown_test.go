// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package scanner

import (
	"testing"

	"nickandperla.net/equals/internal/document"
)

type spanWant struct {
	kind    document.SpanKind
	content string
}

func assertSpans(t *testing.T, line document.Line, want []spanWant) {
	t.Helper()
	if len(line.Spans) != len(want) {
		t.Fatalf("line %d: expected %d spans, got %d (%+v)",
			line.Number, len(want), len(line.Spans), line.Spans)
	}
	for i, w := range want {
		got := line.Spans[i]
		if got.Kind != w.kind || got.Content != w.content {
			t.Errorf("line %d span %d: expected %s %q, got %s %q",
				line.Number, i, w.kind, w.content, got.Kind, got.Content)
		}
	}
}

func TestMarkdownPlainTextLine(t *testing.T) {
	doc := NewMarkdown().Scan("Hello world!")
	if len(doc.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(doc.Lines))
	}
	assertSpans(t, doc.Lines[0], []spanWant{{document.Text, "Hello world!"}})
}

func TestMarkdownInlineCodeSingle(t *testing.T) {
	doc := NewMarkdown().Scan("This has `inline` code.")
	assertSpans(t, doc.Lines[0], []spanWant{
		{document.Text, "This has `"},
		{document.Code, "inline"},
		{document.Text, "` code."},
	})
}

func TestMarkdownMultipleInlineCodes(t *testing.T) {
	doc := NewMarkdown().Scan("`a` + `b` = `c`")
	assertSpans(t, doc.Lines[0], []spanWant{
		{document.Text, "`"},
		{document.Code, "a"},
		{document.Text, "` + `"},
		{document.Code, "b"},
		{document.Text, "` = `"},
		{document.Code, "c"},
		{document.Text, "`"},
	})
}

func TestMarkdownUnclosedInlineCodeBecomesText(t *testing.T) {
	doc := NewMarkdown().Scan("This `never closes")
	assertSpans(t, doc.Lines[0], []spanWant{{document.Text, "This `never closes"}})
}

func TestMarkdownFencedCodeBlockBasic(t *testing.T) {
	doc := NewMarkdown().Scan("```\na = 1\nb = 2\n```")
	if len(doc.Lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(doc.Lines))
	}
	assertSpans(t, doc.Lines[0], []spanWant{{document.Text, "```"}})
	assertSpans(t, doc.Lines[1], []spanWant{{document.Code, "a = 1"}})
	assertSpans(t, doc.Lines[2], []spanWant{{document.Code, "b = 2"}})
	assertSpans(t, doc.Lines[3], []spanWant{{document.Text, "```"}})
}

func TestMarkdownFenceLanguageTagIgnored(t *testing.T) {
	doc := NewMarkdown().Scan("```python\nprint('hi')\n```")
	if len(doc.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(doc.Lines))
	}
	assertSpans(t, doc.Lines[0], []spanWant{{document.Text, "```python"}})
	assertSpans(t, doc.Lines[1], []spanWant{{document.Code, "print('hi')"}})
	assertSpans(t, doc.Lines[2], []spanWant{{document.Text, "```"}})
}

func TestMarkdownIndentedFenceToggles(t *testing.T) {
	doc := NewMarkdown().Scan("  ```\ncode\n  ```")
	assertSpans(t, doc.Lines[0], []spanWant{{document.Text, "  ```"}})
	assertSpans(t, doc.Lines[1], []spanWant{{document.Code, "code"}})
	assertSpans(t, doc.Lines[2], []spanWant{{document.Text, "  ```"}})
}

func TestMarkdownMixedDocument(t *testing.T) {
	input := "Text before.\n```python\nx = 1\ny = 2\n```\nInline `2 + 2` works."
	doc := NewMarkdown().Scan(input)

	if len(doc.Lines) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(doc.Lines))
	}
	assertSpans(t, doc.Lines[0], []spanWant{{document.Text, "Text before."}})
	assertSpans(t, doc.Lines[1], []spanWant{{document.Text, "```python"}})
	assertSpans(t, doc.Lines[2], []spanWant{{document.Code, "x = 1"}})
	assertSpans(t, doc.Lines[3], []spanWant{{document.Code, "y = 2"}})
	assertSpans(t, doc.Lines[4], []spanWant{{document.Text, "```"}})
	assertSpans(t, doc.Lines[5], []spanWant{
		{document.Text, "Inline `"},
		{document.Code, "2 + 2"},
		{document.Text, "` works."},
	})

	if got := doc.Reconstruct(); got != input {
		t.Errorf("round trip failed:\ninput %q\ngot   %q", input, got)
	}
}

func TestMarkdownRoundTrip(t *testing.T) {
	inputs := []string{
		"Hello world!",
		"This has `inline` code.",
		"`a` + `b` = `c`",
		"This `never closes",
		"```\na = 1\n```",
		"```python\nprint('hi')\n```\n",
		"",
		"empty code ``\nand more",
		"Unterminated fence\n```\nstill code to the end",
	}
	for _, input := range inputs {
		if got := NewMarkdown().Scan(input).Reconstruct(); got != input {
			t.Errorf("round trip failed:\ninput %q\ngot   %q", input, got)
		}
	}
}

func TestMarkdownFenceStateCarriesAcrossLines(t *testing.T) {
	doc := NewMarkdown().Scan("```\nfirst\nsecond\n```\nafter `x` end")
	blocks := doc.CodeBlocks()
	if len(blocks) != 3 {
		t.Fatalf("expected 3 code blocks, got %d", len(blocks))
	}
	if blocks[0].Content != "first" || blocks[1].Content != "second" || blocks[2].Content != "x" {
		t.Errorf("unexpected blocks: %+v", blocks)
	}
}
