package lang

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nickandperla.net/equals/internal/codeline"
	"nickandperla.net/equals/internal/document"
)

const (
	fendMarker  = "#="
	fendComment = "#"
)

// Fend evaluates blocks with a single fend invocation: statements joined
// with "; " and marked lines wrapped in a print/println pair that emits the
// result marker. Fend has no assignment form worth detecting, so every
// marked line is a plain Eval.
type Fend struct {
	run runner
}

// FendOption configures the Fend pack.
type FendOption func(*Fend)

// WithFendCommand overrides the interpreter command and its arguments.
func WithFendCommand(command string, args ...string) FendOption {
	return func(f *Fend) {
		f.run.command = command
		if len(args) > 0 {
			f.run.args = args
		}
	}
}

// WithFendTimeout bounds the interpreter invocation.
func WithFendTimeout(timeout time.Duration) FendOption {
	return func(f *Fend) { f.run.timeout = timeout }
}

// NewFend creates the Fend pack.
func NewFend(opts ...FendOption) *Fend {
	f := &Fend{run: newRunner("fend")}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name returns "fend".
func (f *Fend) Name() string { return "fend" }

// Marker returns the Fend eval marker.
func (f *Fend) Marker() string { return fendMarker }

// Command returns the configured interpreter command.
func (f *Fend) Command() string { return f.run.command }

// Evaluate builds the joined script, runs it as a single argument, and
// returns an update for each marked line whose result changed.
func (f *Fend) Evaluate(ctx context.Context, blocks []document.CodeBlockView) []document.CodeBlockUpdate {
	if len(blocks) == 0 {
		return nil
	}

	parsed := make([]codeline.Line, len(blocks))
	for i, block := range blocks {
		parsed[i] = codeline.Split(block.Content, fendMarker, fendComment, nil)
	}

	script := buildFendScript(parsed)
	if script == "" {
		return nil
	}

	output, err := f.run.run(ctx, "", script)
	if err != nil {
		return nil
	}

	results := parseResults(output)
	var updates []document.CodeBlockUpdate
	for i, block := range blocks {
		value, ok := results[i]
		if !ok {
			continue
		}
		content := parsed[i].Reconstruct(value)
		if content != block.Content {
			updates = append(updates, document.CodeBlockUpdate{ID: block.ID, Content: content})
		}
	}
	return updates
}

func buildFendScript(parsed []codeline.Line) string {
	var stmts []string
	for i, line := range parsed {
		switch l := line.(type) {
		case codeline.Code:
			if l.Text != "" {
				stmts = append(stmts, l.Text)
			}
		case codeline.Eval:
			if l.Expr != "" {
				stmts = append(stmts, fmt.Sprintf("print \"%s%d \"; println (%s)", resultPrefix, i, l.Expr))
			}
		}
	}
	return strings.Join(stmts, "; ")
}
