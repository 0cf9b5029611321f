// Package lexer implements a lexer for a Racket-like dialect, following
// Racket's reader grammar (https://docs.racket-lang.org/reference/reader.html),
// ported from the original mracket/reader/lexer.py. The lexing algorithm
// (longest-match over an ordered pattern list, skip whitespace/comments,
// position tracking) is adapted from that module; the surrounding Go idiom
// (a single exported Tokenize entry point returning ([]token.Token, error))
// follows the teacher's parser.Parse(io.Reader) (*ast.File, error) shape
// (akhil.cc/mexdown/parser/parse.go).
package lexer

import (
	"fmt"

	"github.com/mracket/mracket-go/internal/token"
)

// Error is returned for unrecognized input or an unterminated string.
type Error struct {
	Offset  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Message, e.Offset)
}

// ReaderError marks Error as a reader.Error.
func (e *Error) ReaderError() {}

// Tokenize converts source into a token stream terminated by token.EOF.
// Whitespace and line comments are skipped without producing tokens: only
// the remaining tokens (plus the trailing EOF) are returned.
func Tokenize(source string) ([]token.Token, error) {
	l := &lexer{source: source, line: 1, column: 1}
	var out []token.Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out, nil
		}
	}
}

type lexer struct {
	source string // remaining (unconsumed) source
	offset int
	line   int
	column int
}

func (l *lexer) next() (token.Token, error) {
	for {
		if m := reWhitespace.FindString(l.source); m != "" {
			l.advance(m)
			continue
		}
		if m := reLineComment.FindString(l.source); m != "" {
			l.advance(m)
			continue
		}
		break
	}

	if len(l.source) == 0 {
		return token.EOFToken, nil
	}

	if m := reBoolean.FindString(l.source); m != "" {
		return l.emit(token.Boolean, m), nil
	}
	if m := reAbbreviatedBool.FindString(l.source); m != "" {
		return l.emit(token.Boolean, m), nil
	}
	if m, ok := l.matchCharacter(); ok {
		return l.emit(token.Character, m), nil
	}
	if m, ok := l.matchNumber(); ok {
		return l.emit(token.Number, m), nil
	}
	if m := reString.FindString(l.source); m != "" {
		return l.emit(token.String, m), nil
	}
	if m := reReaderDirective.FindString(l.source); m != "" {
		return l.emit(token.ReaderDirective, m), nil
	}
	if m := reSymbol.FindString(l.source); m != "" {
		return l.emit(token.Symbol, m), nil
	}
	if m := reDelimiter.FindString(l.source); m != "" {
		return l.emit(l.delimiterKind(m), m), nil
	}

	return token.Token{}, &Error{Offset: l.offset, Message: "unrecognized token"}
}

// matchCharacter implements the #\ character grammar (spec.md §4.1): a
// named char, an octal triple, \u + 1-4 hex digits, \U + 1-8 hex digits, or
// a single non-alphanumeric char. The two single-character forms require a
// following-character check that RE2's lack of lookahead can't express
// inline, so they're resolved here instead of in patterns.go.
func (l *lexer) matchCharacter() (string, bool) {
	if m := reCharacterNamed.FindString(l.source); m != "" {
		return m, true
	}
	if m := reCharacterOctal.FindString(l.source); m != "" {
		return m, true
	}
	if m := reCharacterHexU.FindString(l.source); m != "" {
		return m, true
	}
	if m := reCharacterHexCapU.FindString(l.source); m != "" {
		return m, true
	}
	if len(l.source) < 2 || l.source[0] != '#' || l.source[1] != '\\' {
		return "", false
	}
	rest := []rune(l.source[2:])
	if len(rest) == 0 {
		return "", false
	}
	c := rest[0]
	isAlpha := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	isOctalDigit := c >= '0' && c <= '7'
	if isAlpha {
		// a single letter is only a character literal if NOT followed by
		// another letter (else it's a named-character prefix that failed
		// to match above, e.g. part of a longer symbol).
		if len(rest) > 1 && isLetter(rest[1]) {
			return "", false
		}
	}
	if isOctalDigit {
		if len(rest) > 1 && rest[1] >= '0' && rest[1] <= '7' {
			return "", false
		}
	}
	// consume exactly one rune after `#\`
	n := 2 + len(string(c))
	return l.source[:n], true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// matchNumber implements the longest-match-then-delimiter-check rule from
// spec.md §4.1: a number must be followed by a delimiter or end-of-input,
// otherwise the run of characters is re-tokenized as a symbol (so `1a`,
// `1..`, `1-` lex as symbols, and `#\49` lexes as character `#\4` then
// number `9`).
func (l *lexer) matchNumber() (string, bool) {
	m := reNumber.FindString(l.source)
	if m == "" {
		return "", false
	}
	rest := l.source[len(m):]
	if !reNumberDelimiterOK.MatchString(rest) {
		return "", false
	}
	return m, true
}

func (l *lexer) delimiterKind(source string) token.Kind {
	switch source {
	case "(", "[", "{":
		return token.LParen
	case ")", "]", "}":
		return token.RParen
	case "`":
		return token.Quasiquote
	case "'":
		return token.Quote
	case ",":
		return token.Unquote
	case ",@":
		return token.UnquoteSplicing
	default:
		return token.EOF // unreachable: reDelimiter only matches the above
	}
}

func (l *lexer) emit(kind token.Kind, source string) token.Token {
	tok := token.Token{Kind: kind, Source: source, Offset: l.offset, Line: l.line, Column: l.column}
	l.advance(source)
	return tok
}

func (l *lexer) advance(consumed string) {
	for _, r := range consumed {
		if r == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
	}
	l.offset += len(consumed)
	l.source = l.source[len(consumed):]
}
