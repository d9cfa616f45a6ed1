package equals

import (
	"context"
	"io"
	"os"

	"nickandperla.net/equals/internal/scanner"
)

// Transformer runs the transform pipeline: scan the input into a document,
// extract its code spans, hand them to the evaluator, merge the returned
// updates, and reconstruct the text. One Transformer owns one document at a
// time; independent Transformers never share state.
type Transformer struct {
	evaluator Evaluator
	markdown  bool
}

// New creates a Transformer with the given options. The default scans plain
// text (every line is code) and evaluates with the Python pack.
func New(opts ...Option) *Transformer {
	t := &Transformer{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transform evaluates the code embedded in input and returns the
// reconstructed text. A document with no code spans never invokes the
// evaluator. Evaluator failures surface as unchanged spans, not errors; the
// only error here is the internal consistency fault from a structure change
// between extraction and merge.
func (t *Transformer) Transform(ctx context.Context, input string) (string, error) {
	var sc scanner.Scanner = scanner.NewPlain()
	if t.markdown {
		sc = scanner.NewMarkdown()
	}

	doc := sc.Scan(input)
	blocks := doc.CodeBlocks()
	if len(blocks) == 0 {
		return doc.Reconstruct(), nil
	}

	updates := t.eval().Evaluate(ctx, blocks)
	if err := doc.Merge(updates); err != nil {
		return "", err
	}
	return doc.Reconstruct(), nil
}

// TransformReader evaluates input from a reader.
func (t *Transformer) TransformReader(ctx context.Context, r io.Reader) (string, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return t.Transform(ctx, string(input))
}

// TransformFile evaluates a file's contents.
func (t *Transformer) TransformFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return t.TransformReader(ctx, f)
}

// eval returns the configured evaluator, constructing the default Python
// pack on first use.
func (t *Transformer) eval() Evaluator {
	if t.evaluator == nil {
		t.evaluator = defaultEvaluator()
	}
	return t.evaluator
}
