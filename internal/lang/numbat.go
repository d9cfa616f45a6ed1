package lang

import (
	"context"
	"strings"
	"time"

	"nickandperla.net/equals/internal/codeline"
	"nickandperla.net/equals/internal/document"
)

const (
	numbatMarker  = "#="
	numbatComment = "#"
)

// Numbat evaluates each marked line with its own numbat invocation,
// replaying every preceding statement so variable context carries across
// lines in document order.
type Numbat struct {
	run runner
}

// NumbatOption configures the Numbat pack.
type NumbatOption func(*Numbat)

// WithNumbatCommand overrides the interpreter command and its arguments.
func WithNumbatCommand(command string, args ...string) NumbatOption {
	return func(n *Numbat) {
		n.run.command = command
		if len(args) > 0 {
			n.run.args = args
		}
	}
}

// WithNumbatTimeout bounds each interpreter invocation.
func WithNumbatTimeout(timeout time.Duration) NumbatOption {
	return func(n *Numbat) { n.run.timeout = timeout }
}

// NewNumbat creates the Numbat pack.
func NewNumbat(opts ...NumbatOption) *Numbat {
	n := &Numbat{run: newRunner("numbat", "--no-config", "--no-init", "--color", "never")}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Name returns "numbat".
func (n *Numbat) Name() string { return "numbat" }

// Marker returns the Numbat eval marker.
func (n *Numbat) Marker() string { return numbatMarker }

// Command returns the configured interpreter command.
func (n *Numbat) Command() string { return n.run.command }

// Evaluate walks the blocks in order, keeping plain statements and earlier
// assignments as replayable context. A failed invocation leaves that line
// unchanged and the walk continues.
func (n *Numbat) Evaluate(ctx context.Context, blocks []document.CodeBlockView) []document.CodeBlockUpdate {
	if len(blocks) == 0 {
		return nil
	}

	var history []string
	var updates []document.CodeBlockUpdate
	for _, block := range blocks {
		parsed := codeline.Split(block.Content, numbatMarker, numbatComment, numbatAssignment)
		switch l := parsed.(type) {
		case codeline.Code:
			if l.Text != "" {
				history = append(history, l.Text)
			}
		case codeline.Eval:
			sequence := append(append([]string{}, history...), l.Expr)
			if value, ok := n.runSequence(ctx, sequence); ok {
				if content := parsed.Reconstruct(value); content != block.Content {
					updates = append(updates, document.CodeBlockUpdate{ID: block.ID, Content: content})
				}
			}
		case codeline.EvalAssignment:
			sequence := append(append([]string{}, history...), l.Expr, l.Var)
			if value, ok := n.runSequence(ctx, sequence); ok {
				if content := parsed.Reconstruct(value); content != block.Content {
					updates = append(updates, document.CodeBlockUpdate{ID: block.ID, Content: content})
				}
			}
			history = append(history, l.Expr)
		}
	}
	return updates
}

func (n *Numbat) runSequence(ctx context.Context, expressions []string) (string, bool) {
	args := make([]string, 0, 2*len(expressions))
	for _, expr := range expressions {
		args = append(args, "--expression", expr)
	}
	output, err := n.run.run(ctx, "", args...)
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(output), true
}

// numbatAssignment matches "let NAME = ..." (with an optional type
// annotation on the name) and reports NAME.
func numbatAssignment(expr string) (string, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(expr), "let ")
	if !ok {
		return "", false
	}
	lhs, _, ok := strings.Cut(strings.TrimSpace(rest), "=")
	if !ok {
		return "", false
	}
	name, _, _ := strings.Cut(lhs, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	return name, true
}
