// Package generator holds mutation generators: AST visitors that propose
// mutation.Mutation values for the node variants they care about, ported
// from mracket/mutation/generator/base.py's MutationGenerator.
//
// A generator embeds ast.BaseVisitor and overrides only the Visit* methods
// for node kinds it mutates; every other variant inherits the no-op that
// returns nil. Each overridden method returns []mutation.Mutation boxed as
// any, read back out with AsMutations.
package generator

import (
	"github.com/mracket/mracket-go/internal/ast"
	"github.com/mracket/mracket-go/internal/mutation"
)

// Generator is any AST visitor usable as a mutation source.
type Generator = ast.Visitor

// AsMutations unboxes the any a Visit* method returned (nil, or
// []mutation.Mutation) into a plain slice.
func AsMutations(v any) []mutation.Mutation {
	if v == nil {
		return nil
	}
	return v.([]mutation.Mutation)
}
