package parser

import (
	"github.com/ava12/choice"
	"github.com/ava12/choice/source"
)

// Error codes used by parser:
const (
	// UnexpectedEoiError indicates backslash at the very end of input.
	UnexpectedEoiError = choice.SyntaxErrors + iota

	// UnterminatedCommentError indicates block comment with no closing */.
	UnterminatedCommentError

	// ExpectedSeparatorError indicates choice alternative not followed by | or }.
	ExpectedSeparatorError

	// TrailingTextError indicates that parsing stopped before the end of input, i.e. at unpaired | or }.
	TrailingTextError

	// DepthExceededError indicates choice groups nested deeper than allowed by Options.MaxDepth.
	DepthExceededError
)

var _ choice.SourcePos = source.Pos{}

// LogicError indicates broken internal invariant, it is never caused by input alone.
const LogicError = choice.ParserErrors

func unexpectedEoiError(sp source.Pos) *choice.Error {
	return choice.FormatErrorPos(sp, UnexpectedEoiError, "unexpected end of input after backslash")
}

func unterminatedCommentError(sp source.Pos) *choice.Error {
	return choice.FormatErrorPos(sp, UnterminatedCommentError, "unterminated comment")
}

func expectedSeparatorError(sp source.Pos) *choice.Error {
	return choice.FormatErrorPos(sp, ExpectedSeparatorError, "expected '|' or '}' after choice text")
}

func trailingTextError(sp source.Pos) *choice.Error {
	return choice.FormatErrorPos(sp, TrailingTextError, "failed to parse up to the end of the prompt text")
}

func depthExceededError(sp source.Pos, maxDepth int) *choice.Error {
	return choice.FormatErrorPos(sp, DepthExceededError, "choice groups nested deeper than %d levels", maxDepth)
}

func logicError(sp source.Pos, msg string, params ...any) *choice.Error {
	return choice.FormatErrorPos(sp, LogicError, "internal error: "+msg, params...)
}
