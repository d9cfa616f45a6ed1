// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package codeline classifies one line of code text against a language
// pack's marker protocol.
//
// A line is plain code, an "evaluate and show" line, or an "evaluate as
// assignment and show" line. The classification is a transient view: it
// lives only while a pack builds its interpreter request and reconstructs a
// replacement line; it is never stored in a document.
package codeline

import "strings"

// AssignmentDetector reports the bound name when an expression is an
// assignment. Each language pack supplies its own notion of assignment
// syntax; there is no universal rule.
type AssignmentDetector func(expr string) (name string, ok bool)

// Line is one classified code line.
type Line interface {
	// Reconstruct renders the line with a new result. Plain code comes back
	// verbatim; evaluable lines become "<expr> <marker> <result>" with any
	// trailing comment reappended after a single space.
	Reconstruct(result string) string
}

// Code is a line with no evaluation marker. Downstream steps leave it
// untouched.
type Code struct {
	Text string
}

// Reconstruct returns the original text verbatim.
func (c Code) Reconstruct(string) string { return c.Text }

// Eval is an evaluable line: expression, marker, an optional prior result
// (empty string when absent) and an optional trailing comment (empty when
// absent, otherwise starting with the comment prefix).
type Eval struct {
	Expr    string
	Marker  string
	Result  string
	Comment string
}

// Reconstruct renders the line with result in place of any prior result.
func (e Eval) Reconstruct(result string) string {
	return rebuild(e.Expr, e.Marker, result, e.Comment)
}

// EvalAssignment is an evaluable line whose expression binds a name. The
// expression keeps the full assignment text; Var is the bound name the
// pack's detector extracted.
type EvalAssignment struct {
	Var     string
	Expr    string
	Marker  string
	Result  string
	Comment string
}

// Reconstruct renders the line with result in place of any prior result.
func (e EvalAssignment) Reconstruct(result string) string {
	return rebuild(e.Expr, e.Marker, result, e.Comment)
}

func rebuild(expr, marker, result, comment string) string {
	var sb strings.Builder
	sb.WriteString(expr)
	sb.WriteByte(' ')
	sb.WriteString(marker)
	sb.WriteByte(' ')
	sb.WriteString(result)
	if comment != "" {
		sb.WriteByte(' ')
		sb.WriteString(strings.TrimSpace(comment))
	}
	return sb.String()
}

// Split classifies one line of code text. The input is trimmed; without the
// marker the whole trimmed text is plain Code. Otherwise the text before the
// first marker occurrence is the expression and the remainder splits into a
// prior result and a trailing comment at the first comment prefix. A marker
// with nothing before it is not an error, just an Eval with an empty
// expression.
func Split(input, marker, comment string, detect AssignmentDetector) Line {
	trimmed := strings.TrimSpace(input)

	pos := strings.Index(trimmed, marker)
	if pos < 0 {
		return Code{Text: trimmed}
	}

	expr := strings.TrimSpace(trimmed[:pos])
	after := trimmed[pos+len(marker):]

	var result, trailing string
	if cpos := strings.Index(after, comment); cpos >= 0 {
		result = strings.TrimSpace(after[:cpos])
		trailing = strings.TrimSpace(after[cpos:])
	} else {
		result = strings.TrimSpace(after)
	}

	if detect != nil {
		if name, ok := detect(expr); ok {
			return EvalAssignment{
				Var:     name,
				Expr:    expr,
				Marker:  marker,
				Result:  result,
				Comment: trailing,
			}
		}
	}
	return Eval{
		Expr:    expr,
		Marker:  marker,
		Result:  result,
		Comment: trailing,
	}
}
