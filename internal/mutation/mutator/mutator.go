// Package mutator composes mutation generators into a whole-program
// traversal. It is kept separate from internal/mutation (which only holds
// the Mutation/Mutant value types) so that internal/mutation/generator can
// import internal/mutation for those types without internal/mutation ever
// needing to import generator back — the Python original has
// mracket/mutation/__init__.py (types), mracket/mutation/mutator.py
// (Mutator, imports generator), and generator/base.py (imports
// mracket.mutation) in one package tree, which Go cannot express directly
// since mutation -> generator -> mutation would be an import cycle.
package mutator

import (
	"github.com/mracket/mracket-go/internal/ast"
	"github.com/mracket/mracket-go/internal/mutation"
	"github.com/mracket/mracket-go/internal/mutation/generator"
)

// Mutator walks a program, and for every node, asks each of its generators
// what mutations apply there, descending into children afterward. A name
// can be given its own Mutator (a different generator set) via
// NameSpecificMutators, so one definition can be mutated more
// aggressively, or excluded entirely, without affecting the rest of the
// program (ported from mracket/mutation/mutator.py's Mutator and its
// name_specific_mutators).
type Mutator struct {
	Generators           []generator.Generator
	NameSpecificMutators map[string]*Mutator
}

// GenerateMutations collects every mutation proposed anywhere in program.
func (m *Mutator) GenerateMutations(program *ast.Program) []mutation.Mutation {
	return m.visit(program)
}

// visit asks every generator about n, then recurses into n's children via
// n.Accept(m).
func (m *Mutator) visit(n ast.Node) []mutation.Mutation {
	var muts []mutation.Mutation
	for _, g := range m.Generators {
		muts = append(muts, generator.AsMutations(n.Accept(g))...)
	}
	muts = append(muts, generator.AsMutations(n.Accept(m))...)
	return muts
}

func (m *Mutator) VisitProgram(n *ast.Program) any {
	var muts []mutation.Mutation
	muts = append(muts, m.visit(n.Directive)...)
	for _, stmt := range n.Statements {
		muts = append(muts, m.visit(stmt)...)
	}
	return muts
}

func (m *Mutator) VisitReaderDirective(*ast.ReaderDirective) any { return nil }

func (m *Mutator) VisitNameDefinition(n *ast.NameDefinition) any {
	if sub, ok := m.NameSpecificMutators[n.Name.Token.Source]; ok && sub != nil {
		var muts []mutation.Mutation
		muts = append(muts, m.visit(n.Name)...)
		muts = append(muts, sub.visit(n.Expression)...)
		return muts
	}
	var muts []mutation.Mutation
	muts = append(muts, m.visit(n.Name)...)
	muts = append(muts, m.visit(n.Expression)...)
	return muts
}

func (m *Mutator) VisitStructureDefinition(n *ast.StructureDefinition) any {
	var muts []mutation.Mutation
	muts = append(muts, m.visit(n.Name)...)
	for _, field := range n.Fields {
		muts = append(muts, m.visit(field)...)
	}
	return muts
}

func (m *Mutator) VisitLiteral(*ast.Literal) any { return nil }
func (m *Mutator) VisitName(*ast.Name) any        { return nil }

func (m *Mutator) VisitCond(n *ast.Cond) any {
	var muts []mutation.Mutation
	for _, branch := range n.Branches {
		muts = append(muts, m.visit(branch.Condition)...)
		muts = append(muts, m.visit(branch.Expression)...)
	}
	return muts
}

func (m *Mutator) VisitLambda(n *ast.Lambda) any {
	var muts []mutation.Mutation
	for _, v := range n.Variables {
		muts = append(muts, m.visit(v)...)
	}
	muts = append(muts, m.visit(n.Body)...)
	return muts
}

func (m *Mutator) VisitLet(n *ast.Let) any {
	var muts []mutation.Mutation
	for _, binding := range n.Bindings {
		muts = append(muts, m.visit(binding.Name)...)
		muts = append(muts, m.visit(binding.Expression)...)
	}
	muts = append(muts, m.visit(n.Body)...)
	return muts
}

func (m *Mutator) VisitLocal(n *ast.Local) any {
	var muts []mutation.Mutation
	for _, def := range n.Definitions {
		muts = append(muts, m.visit(def)...)
	}
	muts = append(muts, m.visit(n.Body)...)
	return muts
}

func (m *Mutator) VisitProcedureApplication(n *ast.ProcedureApplication) any {
	var muts []mutation.Mutation
	for _, e := range n.Expressions {
		muts = append(muts, m.visit(e)...)
	}
	return muts
}

// VisitTestCase does not recurse: test case arguments form the testing
// oracle and are never mutated (mracket/mutation/mutator.py's
// visit_test_case_node is a no-op, unlike the applier's).
func (m *Mutator) VisitTestCase(*ast.TestCase) any { return nil }

// VisitLibraryRequire does not recurse, matching
// mracket/mutation/mutator.py's visit_library_require_node.
func (m *Mutator) VisitLibraryRequire(*ast.LibraryRequire) any { return nil }
