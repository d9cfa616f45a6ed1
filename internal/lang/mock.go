package lang

import (
	"context"

	"nickandperla.net/equals/internal/document"
)

// Mock is a scripted evaluator for testing. It records how many times it
// was invoked so tests can assert the pipeline skipped it.
type Mock struct {
	Updates []document.CodeBlockUpdate
	Handler func(blocks []document.CodeBlockView) []document.CodeBlockUpdate
	Calls   int
}

// NewMock creates a mock evaluator returning fixed updates.
func NewMock(updates ...document.CodeBlockUpdate) *Mock {
	return &Mock{Updates: updates}
}

// NewMockHandler creates a mock evaluator with a custom handler.
func NewMockHandler(handler func(blocks []document.CodeBlockView) []document.CodeBlockUpdate) *Mock {
	return &Mock{Handler: handler}
}

// Name returns "mock".
func (m *Mock) Name() string { return "mock" }

// Marker returns the shared eval marker.
func (m *Mock) Marker() string { return "#=" }

// Evaluate returns the scripted updates or calls the handler.
func (m *Mock) Evaluate(_ context.Context, blocks []document.CodeBlockView) []document.CodeBlockUpdate {
	m.Calls++
	if m.Handler != nil {
		return m.Handler(blocks)
	}
	return m.Updates
}
