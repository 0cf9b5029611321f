package applier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mracket/mracket-go/internal/ast"
	"github.com/mracket/mracket-go/internal/lexer"
	"github.com/mracket/mracket-go/internal/mutation"
	"github.com/mracket/mracket-go/internal/mutation/applier"
	"github.com/mracket/mracket-go/internal/mutation/generator"
	"github.com/mracket/mracket-go/internal/mutation/mutator"
	"github.com/mracket/mracket-go/internal/parser"
)

func mustParseProgram(t *testing.T, source string) *ast.Program {
	t.Helper()
	tokens, err := lexer.Tokenize(source)
	require.NoError(t, err)
	program, err := parser.Parse(tokens)
	require.NoError(t, err)
	return program
}

func TestApplierProducesOneMutantSourcePerMutation(t *testing.T) {
	program := mustParseProgram(t, "#lang racket\n(+ 1)")
	m := &mutator.Mutator{
		Generators: []generator.Generator{
			&generator.ProcedureReplacement{Replacements: map[string][]string{"+": {"-", "*"}}},
		},
	}
	muts := m.GenerateMutations(program)
	require.Len(t, muts, 2)

	a := &applier.Applier{Program: program, Mutations: muts}
	mutants := a.ApplyMutations()

	require.Len(t, mutants, 2)
	assert.Equal(t, "#lang racket\n(- 1)", mutants[0].Source)
	assert.Equal(t, "#lang racket\n(* 1)", mutants[1].Source)
}

// TestApplierRestoresOriginalTree checks spec.md §8's invariant that the
// program tree is identical, pointer-for-pointer, after ApplyMutations
// returns, however many mutations were applied along the way.
func TestApplierRestoresOriginalTree(t *testing.T) {
	program := mustParseProgram(t, "#lang racket\n(+ 1 (+ 2 3))")
	m := &mutator.Mutator{
		Generators: []generator.Generator{
			&generator.ProcedureReplacement{Replacements: map[string][]string{"+": {"-", "*", "/"}}},
		},
	}
	muts := m.GenerateMutations(program)
	require.Len(t, muts, 6)

	outer := program.Statements[0].(*ast.ProcedureApplication)
	inner := outer.Expressions[2].(*ast.ProcedureApplication)
	outerProcedure := outer.Expressions[0]
	innerProcedure := inner.Expressions[0]

	a := &applier.Applier{Program: program, Mutations: muts}
	mutants := a.ApplyMutations()
	require.Len(t, mutants, 6)

	assert.Same(t, outerProcedure, outer.Expressions[0])
	assert.Same(t, innerProcedure, inner.Expressions[0])
	assert.Same(t, outer, program.Statements[0])
}

// TestApplierRecursesIntoTestCaseAndLibraryRequire asserts the applier,
// unlike the mutator, still visits inside test-case arguments and
// library-require names to apply mutations already proposed elsewhere.
func TestApplierRecursesIntoTestCaseAndLibraryRequire(t *testing.T) {
	program := mustParseProgram(t, "#lang racket\n(check-expect (+ 1 2) 3)")
	tc := program.Statements[0].(*ast.TestCase)
	app := tc.Arguments[0].(*ast.ProcedureApplication)
	procedure := app.Expressions[0].(*ast.Name)

	replacement := &ast.Name{Base: ast.NewBase(procedure.Token)}
	replacement.Token.Source = "-"

	muts := []mutation.Mutation{{Original: procedure, Replacement: replacement, Explanation: "test"}}
	a := &applier.Applier{Program: program, Mutations: muts}
	mutants := a.ApplyMutations()

	require.Len(t, mutants, 1)
	assert.Equal(t, "#lang racket\n(check-expect (- 1 2) 3)", mutants[0].Source)
}
