package lox

import (
	"errors"
	"fmt"
	"strings"
)

// LexError reports a malformed token: a bad number literal, an unterminated
// string, or a character the language has no use for. The lexer keeps going
// after recording one, so a single pass can surface several.
type LexError struct {
	Pos    Position
	Msg    string
	source string
}

func newLexError(pos Position, source string, format string, args ...any) *LexError {
	return &LexError{Pos: pos, Msg: fmt.Sprintf(format, args...), source: source}
}

func (e *LexError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "lex error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
	if frame := formatCodeFrame(e.source, e.Pos); frame != "" {
		b.WriteString("\n")
		b.WriteString(frame)
	}
	return b.String()
}

// ParseError reports a token sequence that violates the grammar. The parser
// synchronizes to the next statement boundary after recording one, so several
// can be collected in one pass; a program with any ParseError is never run.
type ParseError struct {
	Pos    Position
	Msg    string
	source string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "parse error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
	if frame := formatCodeFrame(e.source, e.Pos); frame != "" {
		b.WriteString("\n")
		b.WriteString(frame)
	}
	return b.String()
}

// RuntimeError reports a failure discovered during evaluation: an undefined
// variable or property, a call to a non-callable value, an arity mismatch, or
// an operator applied to the wrong kinds of operands. It aborts the run.
type RuntimeError struct {
	Message   string
	CodeFrame string
	Frames    []StackFrame
}

// StackFrame records one entry of the call stack at the point of failure.
type StackFrame struct {
	Function string
	Pos      Position
}

func (re *RuntimeError) Error() string {
	var b strings.Builder
	b.WriteString(re.Message)
	if re.CodeFrame != "" {
		b.WriteString("\n")
		b.WriteString(re.CodeFrame)
	}
	for _, frame := range re.Frames {
		if frame.Pos.Line > 0 && frame.Pos.Column > 0 {
			fmt.Fprintf(&b, "\n  at %s (%d:%d)", frame.Function, frame.Pos.Line, frame.Pos.Column)
		} else if frame.Pos.Line > 0 {
			fmt.Fprintf(&b, "\n  at %s (line %d)", frame.Function, frame.Pos.Line)
		} else {
			fmt.Fprintf(&b, "\n  at %s", frame.Function)
		}
	}
	return b.String()
}

// Unwrap returns nil. RuntimeError is terminal: it carries the original
// message but does not wrap another error.
func (re *RuntimeError) Unwrap() error {
	return nil
}

func combineErrors(errs []error) error {
	if len(errs) == 1 {
		return errs[0]
	}
	msg := ""
	for _, err := range errs {
		if msg != "" {
			msg += "\n\n"
		}
		msg += err.Error()
	}
	return errors.New(msg)
}
