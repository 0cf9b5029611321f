package parser

import (
	"fmt"

	"github.com/mracket/mracket-go/internal/token"
)

// ErrorKind enumerates the structured parser errors from spec.md §4.3,
// mirroring the exception hierarchy in mracket/reader/errors.py
// (ExpectedReaderDirective, UnexpectedEOFToken, UnexpectedRightParenthesis,
// MismatchedParentheses, IllegalState).
type ErrorKind int

const (
	ExpectedReaderDirective ErrorKind = iota
	UnexpectedEOFToken
	UnexpectedRightParenthesis
	MismatchedParentheses
	IllegalState
)

// Error is a structured parse error carrying the offending token, as
// required by spec.md §4.3 ("All carry the offending token").
type Error struct {
	Kind    ErrorKind
	Token   token.Token
	Opener  token.Token // only set for MismatchedParentheses
	Message string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ExpectedReaderDirective:
		return "expected a #lang or #reader directive"
	case UnexpectedEOFToken:
		return "unexpected end of file"
	case UnexpectedRightParenthesis:
		return fmt.Sprintf("unexpected %q at line %d, column %d", e.Token.Source, e.Token.Line, e.Token.Column)
	case MismatchedParentheses:
		return fmt.Sprintf("mismatched parentheses: %q at line %d, column %d does not close %q at line %d, column %d",
			e.Token.Source, e.Token.Line, e.Token.Column, e.Opener.Source, e.Opener.Line, e.Opener.Column)
	case IllegalState:
		if e.Message != "" {
			return "parser in illegal state: " + e.Message
		}
		return "parser in illegal state"
	default:
		return "parse error"
	}
}

// ReaderError marks Error as a reader.Error.
func (e *Error) ReaderError() {}
