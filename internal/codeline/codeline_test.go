// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package codeline

import (
	"strings"
	"testing"
)

// detectEquals is a simple assignment detector for tests: the name before
// an "=" with a non-empty right-hand side.
func detectEquals(expr string) (string, bool) {
	pos := strings.Index(expr, "=")
	if pos < 0 {
		return "", false
	}
	name := strings.TrimSpace(expr[:pos])
	rhs := strings.TrimSpace(strings.TrimLeft(expr[pos:], "="))
	if name == "" || rhs == "" {
		return "", false
	}
	return name, true
}

func TestSplitNormalCode(t *testing.T) {
	got := Split("a = 1 + b # comment", "#=", "#", detectEquals)
	code, ok := got.(Code)
	if !ok {
		t.Fatalf("expected Code, got %T", got)
	}
	if code.Text != "a = 1 + b # comment" {
		t.Errorf("unexpected text: %q", code.Text)
	}
}

func TestSplitEval(t *testing.T) {
	got := Split("b + 2 #= 6 # comment", "#=", "#", detectEquals)
	eval, ok := got.(Eval)
	if !ok {
		t.Fatalf("expected Eval, got %T", got)
	}
	want := Eval{Expr: "b + 2", Marker: "#=", Result: "6", Comment: "# comment"}
	if eval != want {
		t.Errorf("expected %+v, got %+v", want, eval)
	}
}

func TestSplitEvalNoResult(t *testing.T) {
	got := Split("b + 2 #= # comment", "#=", "#", detectEquals)
	eval, ok := got.(Eval)
	if !ok {
		t.Fatalf("expected Eval, got %T", got)
	}
	if eval.Result != "" {
		t.Errorf("expected absent result, got %q", eval.Result)
	}
	if eval.Comment != "# comment" {
		t.Errorf("expected comment preserved, got %q", eval.Comment)
	}
}

func TestSplitEvalAssignment(t *testing.T) {
	got := Split("c = b + 2 #= 6 # comment", "#=", "#", detectEquals)
	eval, ok := got.(EvalAssignment)
	if !ok {
		t.Fatalf("expected EvalAssignment, got %T", got)
	}
	want := EvalAssignment{Var: "c", Expr: "c = b + 2", Marker: "#=", Result: "6", Comment: "# comment"}
	if eval != want {
		t.Errorf("expected %+v, got %+v", want, eval)
	}
}

func TestSplitEvalAssignmentNoComment(t *testing.T) {
	got := Split("x = y + 3 #= 10", "#=", "#", detectEquals)
	eval, ok := got.(EvalAssignment)
	if !ok {
		t.Fatalf("expected EvalAssignment, got %T", got)
	}
	if eval.Var != "x" || eval.Result != "10" || eval.Comment != "" {
		t.Errorf("unexpected parse: %+v", eval)
	}
}

func TestSplitTrimsWhitespace(t *testing.T) {
	got := Split("  d + 4   #=    12    # some note   ", "#=", "#", detectEquals)
	eval, ok := got.(Eval)
	if !ok {
		t.Fatalf("expected Eval, got %T", got)
	}
	want := Eval{Expr: "d + 4", Marker: "#=", Result: "12", Comment: "# some note"}
	if eval != want {
		t.Errorf("expected %+v, got %+v", want, eval)
	}
}

func TestSplitEmptyLine(t *testing.T) {
	got := Split("", "#=", "#", detectEquals)
	code, ok := got.(Code)
	if !ok {
		t.Fatalf("expected Code, got %T", got)
	}
	if code.Text != "" {
		t.Errorf("expected empty text, got %q", code.Text)
	}
}

func TestSplitMarkerWithEmptyExpression(t *testing.T) {
	// Malformed but not an error: an Eval with an empty expression that
	// downstream evaluators are free to skip.
	got := Split("#= 5", "#=", "#", detectEquals)
	eval, ok := got.(Eval)
	if !ok {
		t.Fatalf("expected Eval, got %T", got)
	}
	if eval.Expr != "" || eval.Result != "5" {
		t.Errorf("unexpected parse: %+v", eval)
	}
}

func TestReconstructCode(t *testing.T) {
	line := Split("x * 2", "#=", "#", detectEquals)
	if got := line.Reconstruct("ignored"); got != "x * 2" {
		t.Errorf("expected verbatim text, got %q", got)
	}
}

func TestReconstructReplacesResult(t *testing.T) {
	line := Split("c = b + 2 #= 6 # comment", "#=", "#", detectEquals)
	if got := line.Reconstruct("8"); got != "c = b + 2 #= 8 # comment" {
		t.Errorf("unexpected reconstruction: %q", got)
	}
}

func TestReconstructWithoutComment(t *testing.T) {
	line := Split("b + 2 #=", "#=", "#", detectEquals)
	if got := line.Reconstruct("4"); got != "b + 2 #= 4" {
		t.Errorf("unexpected reconstruction: %q", got)
	}
}

func TestSplitReconstructLaw(t *testing.T) {
	// parse(reconstruct(parse(line), R)).Result == R for non-empty R.
	lines := []string{
		"b + 2 #= 6 # comment",
		"b + 2 #=",
		"c = b + 2 #= # note",
		"x = y + 3 #= 10",
	}
	for _, input := range lines {
		first := Split(input, "#=", "#", detectEquals)
		rebuilt := first.Reconstruct("42")
		second := Split(rebuilt, "#=", "#", detectEquals)
		var result string
		switch l := second.(type) {
		case Eval:
			result = l.Result
		case EvalAssignment:
			result = l.Result
		default:
			t.Fatalf("%q: reconstruction lost the marker: %q", input, rebuilt)
		}
		if result != "42" {
			t.Errorf("%q: expected result '42' after round trip, got %q", input, result)
		}
	}
}
