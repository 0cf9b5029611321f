// Package applier turns a program plus a list of proposed mutations into
// concrete mutants, one fully-stringified program source per mutation,
// ported from mracket/mutation/applier.py's MutationApplier.
//
// The algorithm is swap/stringify/restore: for every node that some
// mutation targets (matched by pointer identity against Mutation.Original,
// not structural equality), temporarily splice in the replacement, render
// the whole program to source with internal/stringify, capture that
// string as a Mutant, then put the original node back before moving on.
// Because the swap and restore are symmetric, sibling mutations never see
// each other, and the tree is unchanged once ApplyMutations returns.
package applier

import (
	"github.com/mracket/mracket-go/internal/ast"
	"github.com/mracket/mracket-go/internal/mutation"
	"github.com/mracket/mracket-go/internal/stringify"
)

// Applier applies Mutations to Program, one at a time.
type Applier struct {
	Program   *ast.Program
	Mutations []mutation.Mutation
}

// ApplyMutations returns one Mutant per Mutation whose Original node
// actually occurs in Program.
func (a *Applier) ApplyMutations() []mutation.Mutant {
	return a.visit(a.Program)
}

func (a *Applier) visit(n ast.Node) []mutation.Mutant {
	v := n.Accept(a)
	if v == nil {
		return nil
	}
	return v.([]mutation.Mutant)
}

// matching returns every mutation whose Original is identical (by pointer
// identity, via Go's interface equality) to n.
func (a *Applier) matching(n ast.Node) []mutation.Mutation {
	var out []mutation.Mutation
	for _, mut := range a.Mutations {
		if mut.Original == n {
			out = append(out, mut)
		}
	}
	return out
}

func (a *Applier) snapshot() string {
	return stringify.String(a.Program)
}

func (a *Applier) VisitProgram(n *ast.Program) any {
	var mutants []mutation.Mutant

	originalDirective := n.Directive
	for _, mut := range a.matching(n.Directive) {
		n.Directive = mut.Replacement.(*ast.ReaderDirective)
		mutants = append(mutants, mutation.Mutant{Mutation: mut, Source: a.snapshot()})
	}
	n.Directive = originalDirective

	for i, stmt := range n.Statements {
		for _, mut := range a.matching(stmt) {
			n.Statements[i] = mut.Replacement.(ast.Statement)
			mutants = append(mutants, mutation.Mutant{Mutation: mut, Source: a.snapshot()})
		}
		n.Statements[i] = stmt
	}

	mutants = append(mutants, a.visit(n.Directive)...)
	for _, stmt := range n.Statements {
		mutants = append(mutants, a.visit(stmt)...)
	}
	return mutants
}

func (a *Applier) VisitReaderDirective(*ast.ReaderDirective) any { return nil }

func (a *Applier) VisitNameDefinition(n *ast.NameDefinition) any {
	var mutants []mutation.Mutant

	name := n.Name
	for _, mut := range a.matching(n.Name) {
		n.Name = mut.Replacement.(*ast.Name)
		mutants = append(mutants, mutation.Mutant{Mutation: mut, Source: a.snapshot()})
	}
	n.Name = name

	expr := n.Expression
	for _, mut := range a.matching(n.Expression) {
		n.Expression = mut.Replacement.(ast.Expression)
		mutants = append(mutants, mutation.Mutant{Mutation: mut, Source: a.snapshot()})
	}
	n.Expression = expr

	mutants = append(mutants, a.visit(n.Name)...)
	mutants = append(mutants, a.visit(n.Expression)...)
	return mutants
}

func (a *Applier) VisitStructureDefinition(n *ast.StructureDefinition) any {
	var mutants []mutation.Mutant

	name := n.Name
	for _, mut := range a.matching(n.Name) {
		n.Name = mut.Replacement.(*ast.Name)
		mutants = append(mutants, mutation.Mutant{Mutation: mut, Source: a.snapshot()})
	}
	n.Name = name

	for i, field := range n.Fields {
		for _, mut := range a.matching(field) {
			n.Fields[i] = mut.Replacement.(*ast.Name)
			mutants = append(mutants, mutation.Mutant{Mutation: mut, Source: a.snapshot()})
		}
		n.Fields[i] = field
	}

	mutants = append(mutants, a.visit(n.Name)...)
	for _, field := range n.Fields {
		mutants = append(mutants, a.visit(field)...)
	}
	return mutants
}

func (a *Applier) VisitLiteral(*ast.Literal) any { return nil }
func (a *Applier) VisitName(*ast.Name) any        { return nil }

func (a *Applier) VisitCond(n *ast.Cond) any {
	var mutants []mutation.Mutant
	for i, branch := range n.Branches {
		condition := branch.Condition
		for _, mut := range a.matching(condition) {
			n.Branches[i].Condition = mut.Replacement.(ast.Expression)
			mutants = append(mutants, mutation.Mutant{Mutation: mut, Source: a.snapshot()})
		}
		n.Branches[i].Condition = condition

		expr := branch.Expression
		for _, mut := range a.matching(expr) {
			n.Branches[i].Expression = mut.Replacement.(ast.Expression)
			mutants = append(mutants, mutation.Mutant{Mutation: mut, Source: a.snapshot()})
		}
		n.Branches[i].Expression = expr
	}

	for _, branch := range n.Branches {
		mutants = append(mutants, a.visit(branch.Condition)...)
		mutants = append(mutants, a.visit(branch.Expression)...)
	}
	return mutants
}

func (a *Applier) VisitLambda(n *ast.Lambda) any {
	var mutants []mutation.Mutant

	for i, v := range n.Variables {
		for _, mut := range a.matching(v) {
			n.Variables[i] = mut.Replacement.(*ast.Name)
			mutants = append(mutants, mutation.Mutant{Mutation: mut, Source: a.snapshot()})
		}
		n.Variables[i] = v
	}

	body := n.Body
	for _, mut := range a.matching(n.Body) {
		n.Body = mut.Replacement.(ast.Expression)
		mutants = append(mutants, mutation.Mutant{Mutation: mut, Source: a.snapshot()})
	}
	n.Body = body

	for _, v := range n.Variables {
		mutants = append(mutants, a.visit(v)...)
	}
	mutants = append(mutants, a.visit(n.Body)...)
	return mutants
}

func (a *Applier) VisitLet(n *ast.Let) any {
	var mutants []mutation.Mutant

	for i, binding := range n.Bindings {
		name := binding.Name
		for _, mut := range a.matching(name) {
			n.Bindings[i].Name = mut.Replacement.(*ast.Name)
			mutants = append(mutants, mutation.Mutant{Mutation: mut, Source: a.snapshot()})
		}
		n.Bindings[i].Name = name

		expr := binding.Expression
		for _, mut := range a.matching(expr) {
			n.Bindings[i].Expression = mut.Replacement.(ast.Expression)
			mutants = append(mutants, mutation.Mutant{Mutation: mut, Source: a.snapshot()})
		}
		n.Bindings[i].Expression = expr
	}

	body := n.Body
	for _, mut := range a.matching(n.Body) {
		n.Body = mut.Replacement.(ast.Expression)
		mutants = append(mutants, mutation.Mutant{Mutation: mut, Source: a.snapshot()})
	}
	n.Body = body

	for _, binding := range n.Bindings {
		mutants = append(mutants, a.visit(binding.Name)...)
		mutants = append(mutants, a.visit(binding.Expression)...)
	}
	mutants = append(mutants, a.visit(n.Body)...)
	return mutants
}

func (a *Applier) VisitLocal(n *ast.Local) any {
	var mutants []mutation.Mutant

	for i, def := range n.Definitions {
		for _, mut := range a.matching(def) {
			n.Definitions[i] = mut.Replacement.(ast.Definition)
			mutants = append(mutants, mutation.Mutant{Mutation: mut, Source: a.snapshot()})
		}
		n.Definitions[i] = def
	}

	body := n.Body
	for _, mut := range a.matching(n.Body) {
		n.Body = mut.Replacement.(ast.Expression)
		mutants = append(mutants, mutation.Mutant{Mutation: mut, Source: a.snapshot()})
	}
	n.Body = body

	for _, def := range n.Definitions {
		mutants = append(mutants, a.visit(def)...)
	}
	mutants = append(mutants, a.visit(n.Body)...)
	return mutants
}

func (a *Applier) VisitProcedureApplication(n *ast.ProcedureApplication) any {
	var mutants []mutation.Mutant
	for i, e := range n.Expressions {
		for _, mut := range a.matching(e) {
			n.Expressions[i] = mut.Replacement.(ast.Expression)
			mutants = append(mutants, mutation.Mutant{Mutation: mut, Source: a.snapshot()})
		}
		n.Expressions[i] = e
	}
	for _, e := range n.Expressions {
		mutants = append(mutants, a.visit(e)...)
	}
	return mutants
}

func (a *Applier) VisitTestCase(n *ast.TestCase) any {
	var mutants []mutation.Mutant
	for i, arg := range n.Arguments {
		for _, mut := range a.matching(arg) {
			n.Arguments[i] = mut.Replacement.(ast.Expression)
			mutants = append(mutants, mutation.Mutant{Mutation: mut, Source: a.snapshot()})
		}
		n.Arguments[i] = arg
	}
	for _, arg := range n.Arguments {
		mutants = append(mutants, a.visit(arg)...)
	}
	return mutants
}

func (a *Applier) VisitLibraryRequire(n *ast.LibraryRequire) any {
	var mutants []mutation.Mutant
	library := n.Library
	for _, mut := range a.matching(n.Library) {
		n.Library = mut.Replacement.(*ast.Name)
		mutants = append(mutants, mutation.Mutant{Mutation: mut, Source: a.snapshot()})
	}
	n.Library = library

	mutants = append(mutants, a.visit(library)...)
	return mutants
}
