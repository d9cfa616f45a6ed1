// Package equals provides the public API for the equals transformer, which
// evaluates code embedded in text or Markdown and writes results back in
// place.
package equals

import (
	"time"

	"nickandperla.net/equals/internal/document"
	"nickandperla.net/equals/internal/lang"
)

// Option configures a Transformer.
type Option func(*Transformer)

// BlockID identifies a code span within one extraction pass.
type BlockID = document.BlockID

// CodeBlockView is the read-only code span projection handed to evaluators.
type CodeBlockView = document.CodeBlockView

// CodeBlockUpdate is an evaluator's replacement for one code span.
type CodeBlockUpdate = document.CodeBlockUpdate

// Evaluator interface for custom language packs.
type Evaluator = lang.Evaluator

// PythonOption configures the Python pack.
type PythonOption = lang.PythonOption

// NumbatOption configures the Numbat pack.
type NumbatOption = lang.NumbatOption

// FendOption configures the Fend pack.
type FendOption = lang.FendOption

func defaultEvaluator() Evaluator {
	return lang.NewPython()
}

// WithMarkdown selects the Markdown-aware scanner instead of the default
// whole-line-is-code scanner.
func WithMarkdown() Option {
	return func(t *Transformer) { t.markdown = true }
}

// WithEvaluator sets a custom evaluator.
func WithEvaluator(e Evaluator) Option {
	return func(t *Transformer) { t.evaluator = e }
}

// WithPython configures the Python language pack.
func WithPython(opts ...PythonOption) Option {
	return func(t *Transformer) { t.evaluator = lang.NewPython(opts...) }
}

// WithPythonCommand overrides the Python interpreter command.
func WithPythonCommand(command string, args ...string) PythonOption {
	return lang.WithPythonCommand(command, args...)
}

// WithPythonTimeout bounds the Python interpreter invocation.
func WithPythonTimeout(timeout time.Duration) PythonOption {
	return lang.WithPythonTimeout(timeout)
}

// WithNumbat configures the Numbat language pack.
func WithNumbat(opts ...NumbatOption) Option {
	return func(t *Transformer) { t.evaluator = lang.NewNumbat(opts...) }
}

// WithNumbatCommand overrides the Numbat interpreter command.
func WithNumbatCommand(command string, args ...string) NumbatOption {
	return lang.WithNumbatCommand(command, args...)
}

// WithNumbatTimeout bounds each Numbat interpreter invocation.
func WithNumbatTimeout(timeout time.Duration) NumbatOption {
	return lang.WithNumbatTimeout(timeout)
}

// WithFend configures the Fend language pack.
func WithFend(opts ...FendOption) Option {
	return func(t *Transformer) { t.evaluator = lang.NewFend(opts...) }
}

// WithFendCommand overrides the Fend interpreter command.
func WithFendCommand(command string, args ...string) FendOption {
	return lang.WithFendCommand(command, args...)
}

// WithFendTimeout bounds the Fend interpreter invocation.
func WithFendTimeout(timeout time.Duration) FendOption {
	return lang.WithFendTimeout(timeout)
}

// WithMockEvaluator configures a mock evaluator returning fixed updates
// (for testing).
func WithMockEvaluator(updates ...CodeBlockUpdate) Option {
	return func(t *Transformer) { t.evaluator = lang.NewMock(updates...) }
}

// WithMockEvaluatorFunc configures a mock evaluator with a custom handler
// (for testing).
func WithMockEvaluatorFunc(handler func(blocks []CodeBlockView) []CodeBlockUpdate) Option {
	return func(t *Transformer) { t.evaluator = lang.NewMockHandler(handler) }
}
