package generator

import (
	"fmt"

	"github.com/mracket/mracket-go/internal/ast"
	"github.com/mracket/mracket-go/internal/lexer"
	"github.com/mracket/mracket-go/internal/mutation"
	"github.com/mracket/mracket-go/internal/parser"
	"github.com/mracket/mracket-go/internal/stringify"
)

// ProcedureApplicationReplacement swaps an entire procedure application
// (not just its head) for a pre-parsed replacement expression, ported from
// mracket/mutation/generator/procedure_application_replacement.py. Unlike
// ProcedureReplacement, the replacements are small snippets of Racket
// source that must themselves be lexed and parsed, so that work happens
// once in the constructor rather than per-match.
type ProcedureApplicationReplacement struct {
	ast.BaseVisitor
	Replacements map[string][]ast.Expression
}

// NewProcedureApplicationReplacement lexes and parses every replacement
// source string up front; a malformed replacement snippet in the mutator
// config is a configuration error, not a runtime mutation failure.
func NewProcedureApplicationReplacement(replacements map[string][]string) (*ProcedureApplicationReplacement, error) {
	processed := make(map[string][]ast.Expression, len(replacements))
	for procedureName, sources := range replacements {
		exprs := make([]ast.Expression, 0, len(sources))
		for _, source := range sources {
			tokens, err := lexer.Tokenize(source)
			if err != nil {
				return nil, fmt.Errorf("replacement for %q: %w", procedureName, err)
			}
			expr, err := parser.ParseExpression(tokens)
			if err != nil {
				return nil, fmt.Errorf("replacement for %q: %w", procedureName, err)
			}
			exprs = append(exprs, expr)
		}
		processed[procedureName] = exprs
	}
	return &ProcedureApplicationReplacement{Replacements: processed}, nil
}

func (g *ProcedureApplicationReplacement) VisitProcedureApplication(n *ast.ProcedureApplication) any {
	if len(n.Expressions) == 0 {
		return nil
	}
	procedure, ok := n.Expressions[0].(*ast.Name)
	if !ok {
		return nil
	}
	replacements, ok := g.Replacements[procedure.Token.Source]
	if !ok {
		return nil
	}

	muts := make([]mutation.Mutation, 0, len(replacements))
	for _, newNode := range replacements {
		explanation := fmt.Sprintf(
			"Replace procedure application of %s at line %d, column %d with %s",
			procedure.Token.Source, procedure.Token.Line, procedure.Token.Column, stringify.String(newNode),
		)
		muts = append(muts, mutation.Mutation{
			Original:    n,
			Replacement: newNode,
			Explanation: explanation,
		})
	}
	return muts
}
