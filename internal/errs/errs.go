// Package errs provides a small tagged-error helper used by cmd/mracket and
// by internal/runner (to tag lexer and parser errors), generalizing the teacher's local prefix helper
// (akhil.cc/mexdown's mexdown.go: prefix(msg string, err error) error) into
// something reusable.
package errs

import "fmt"

// Tagged wraps err with a short component tag, e.g. "(lexer) " or "(runner) ".
func Tagged(tag string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("(%s) %w", tag, err)
}
