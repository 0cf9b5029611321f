// Package reader declares the shared error taxonomy spanning lexing and
// parsing, mirroring original_source/mracket/reader/errors.py's split
// between LexerError (carries an offset) and ParserError (carries the
// offending token) while giving callers one interface to catch both
// under spec.md §7's single `ReaderError` reason.
package reader

// Error is implemented by both internal/lexer.Error and
// internal/parser.Error via an exported marker method (an unexported
// marker would only be satisfiable by types in this package, since the
// two concrete error types live in separate packages).
type Error interface {
	error
	ReaderError()
}
