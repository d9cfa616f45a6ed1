// Package lang implements the language packs that evaluate code spans.
//
// A pack drives one external interpreter. It classifies each code span with
// the codeline grammar, builds a request the interpreter understands, and
// scrapes line-addressed result markers out of the interpreter's output.
// Packs never touch the document itself; they only return updates.
package lang

import (
	"context"

	"nickandperla.net/equals/internal/document"
)

// Evaluator turns a batch of code spans into a sparse set of content
// updates. It must be total: empty input yields empty output, and any
// failure (missing interpreter, crash, unparsable output) yields zero
// updates rather than an error. BlockIDs absent from the returned updates
// mean "leave that span unchanged".
type Evaluator interface {
	// Name identifies the pack (e.g. "python").
	Name() string
	// Marker is the pack's evaluation marker token (e.g. "#=").
	Marker() string
	// Evaluate computes updates for the given views. It may block on an
	// external process; the context carries cancellation for that process,
	// nothing more.
	Evaluate(ctx context.Context, blocks []document.CodeBlockView) []document.CodeBlockUpdate
}

// All returns every built-in pack with default configuration, in a stable
// order.
func All() []Evaluator {
	return []Evaluator{NewPython(), NewNumbat(), NewFend()}
}
