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
	pythonMarker  = "#="
	pythonComment = "#"
)

// Python evaluates blocks by piping a generated script into python3.
type Python struct {
	run runner
}

// PythonOption configures the Python pack.
type PythonOption func(*Python)

// WithPythonCommand overrides the interpreter command and its arguments.
func WithPythonCommand(command string, args ...string) PythonOption {
	return func(p *Python) {
		p.run.command = command
		if len(args) > 0 {
			p.run.args = args
		}
	}
}

// WithPythonTimeout bounds the interpreter invocation.
func WithPythonTimeout(timeout time.Duration) PythonOption {
	return func(p *Python) { p.run.timeout = timeout }
}

// NewPython creates the Python pack.
func NewPython(opts ...PythonOption) *Python {
	p := &Python{run: newRunner("python3", "-")}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns "python".
func (p *Python) Name() string { return "python" }

// Marker returns the Python eval marker.
func (p *Python) Marker() string { return pythonMarker }

// Command returns the configured interpreter command.
func (p *Python) Command() string { return p.run.command }

// Evaluate generates one script covering every block, runs it, and returns
// an update for each marked line whose result changed. Interpreter failure
// means no updates.
func (p *Python) Evaluate(ctx context.Context, blocks []document.CodeBlockView) []document.CodeBlockUpdate {
	if len(blocks) == 0 {
		return nil
	}

	parsed := make([]codeline.Line, len(blocks))
	for i, block := range blocks {
		parsed[i] = codeline.Split(block.Content, pythonMarker, pythonComment, pythonAssignment)
	}

	output, err := p.run.run(ctx, buildPythonScript(parsed))
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

// buildPythonScript emits plain statements verbatim and wraps evaluable
// lines in a result-marker print. Assignments run the statement first so
// later lines see the binding.
func buildPythonScript(parsed []codeline.Line) string {
	stmts := make([]string, 0, len(parsed))
	for i, line := range parsed {
		switch l := line.(type) {
		case codeline.Code:
			stmts = append(stmts, l.Text)
		case codeline.Eval:
			stmts = append(stmts, fmt.Sprintf("print('%s%d', %s)", resultPrefix, i, l.Expr))
		case codeline.EvalAssignment:
			stmts = append(stmts, fmt.Sprintf("%s\nprint('%s%d', %s)", l.Expr, resultPrefix, i, l.Var))
		}
	}
	return strings.Join(stmts, "\n")
}

// pythonAssignment treats an unqualified "=" that is not part of "==" or
// "!=" as an assignment and reports the left-hand side.
func pythonAssignment(expr string) (string, bool) {
	if !strings.Contains(expr, "=") ||
		strings.Contains(expr, "==") ||
		strings.Contains(expr, "!=") {
		return "", false
	}
	name := strings.TrimSpace(expr[:strings.Index(expr, "=")])
	if name == "" {
		return "", false
	}
	return name, true
}
