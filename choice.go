/*
Package choice expands prompt text written in a small choice grammar.

Literal text may contain groups of alternatives, e.g.

	a {green|red|blue} ball on a {wooden|metal} bench

Every group is replaced with exactly one of its alternatives, picked by a
pseudo-random generator seeded by the caller, so the same text and seed always
give the same result. Groups may nest, C-style comments are removed, and
backslash escapes other than \{, \|, \}, and \/ are kept for later processing
phases (e.g. \( and \) used by weight syntax).

Consists of subpackages:
  - cmd/choice: console utility expanding text, stdin, or HCL prompt files;
  - source: defines source text and the cursor used by the parser;
  - parser: recursive-descent parser producing the expanded text;
  - prompt: expansion with fallback to the original text, and helpers built on it.

Typical usage is

	out := prompt.Expand(ctx, "a {red|blue} ball", 42)
*/
package choice

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	SyntaxErrors = 101 // used by parser
	ParserErrors = 201 // used by parser
	PromptErrors = 301 // used by prompt file loader
)

// Error is the error type used by choice subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source text or 0.
	Line int

	// Col contains column number in source text or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos implements this interface.
type SourcePos interface {
	// SourceName returns source name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// line and col will be added to error message if provided (non-zero), name is added if not empty.
func NewError(code int, msg, name string, line, col int) *Error {
	if line != 0 && col != 0 {
		if name != "" {
			msg += fmt.Sprintf(" in %s", name)
		}
		msg += fmt.Sprintf(" at line %d col %d", line, col)
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
