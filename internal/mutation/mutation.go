// Package mutation defines the value types shared by generators, the
// mutator, and the applier: a proposed substitution (Mutation) and its
// already-applied form (Mutant), ported from mracket/mutation/__init__.py.
// It stays a leaf package with no dependency on internal/mutation/generator
// so that generator can import it for these types without creating an
// import cycle; internal/mutation/mutator holds the Mutator itself.
package mutation

import "github.com/mracket/mracket-go/internal/ast"

// Mutation is a single proposed substitution: replace the node identified
// by Original (compared by identity, not structural equality) with
// Replacement.
type Mutation struct {
	Original    ast.Node
	Replacement ast.Node
	Explanation string
}

// Mutant is one mutation already spliced into the full program source.
type Mutant struct {
	Mutation Mutation
	Source   string
}
