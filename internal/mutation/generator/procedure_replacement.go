package generator

import (
	"fmt"

	"github.com/mracket/mracket-go/internal/ast"
	"github.com/mracket/mracket-go/internal/mutation"
	"github.com/mracket/mracket-go/internal/token"
)

// ProcedureReplacement swaps the procedure being called in an application
// for one of a configured list of replacement names (e.g. `+` -> `-`),
// ported from mracket/mutation/generator/procedure_replacement.py.
type ProcedureReplacement struct {
	ast.BaseVisitor
	Replacements map[string][]string
}

func (g *ProcedureReplacement) VisitProcedureApplication(n *ast.ProcedureApplication) any {
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
	for _, replacement := range replacements {
		newNode := &ast.Name{Base: ast.NewBase(token.FromSource(token.Symbol, replacement))}
		explanation := fmt.Sprintf(
			"Replace procedure `%s' at line %d, column %d with %s",
			procedure.Token.Source, procedure.Token.Line, procedure.Token.Column, replacement,
		)
		muts = append(muts, mutation.Mutation{
			Original:    procedure,
			Replacement: newNode,
			Explanation: explanation,
		})
	}
	return muts
}
