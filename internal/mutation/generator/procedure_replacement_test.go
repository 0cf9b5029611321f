package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mracket/mracket-go/internal/ast"
	"github.com/mracket/mracket-go/internal/lexer"
	"github.com/mracket/mracket-go/internal/mutation/generator"
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

// TestProcedureReplacementTwoMutants covers spec.md §8's scenario of
// `(+ 1)` with a two-entry replacement list yielding two mutations, one per
// replacement name.
func TestProcedureReplacementTwoMutants(t *testing.T) {
	program := mustParseProgram(t, "#lang racket\n(+ 1)")
	g := &generator.ProcedureReplacement{Replacements: map[string][]string{"+": {"-", "*"}}}

	app := program.Statements[0].(*ast.ProcedureApplication)
	muts := generator.AsMutations(app.Accept(g))

	require.Len(t, muts, 2)
	assert.Same(t, app.Expressions[0], muts[0].Original)
	assert.Equal(t, "-", muts[0].Replacement.(*ast.Name).Token.Source)
	assert.Equal(t, "*", muts[1].Replacement.(*ast.Name).Token.Source)
}

func TestProcedureReplacementNoMatchReturnsNil(t *testing.T) {
	program := mustParseProgram(t, "#lang racket\n(foo 1)")
	g := &generator.ProcedureReplacement{Replacements: map[string][]string{"+": {"-"}}}

	app := program.Statements[0].(*ast.ProcedureApplication)
	assert.Nil(t, generator.AsMutations(app.Accept(g)))
}

func TestProcedureReplacementEmptyApplicationReturnsNil(t *testing.T) {
	g := &generator.ProcedureReplacement{Replacements: map[string][]string{"+": {"-"}}}
	app := &ast.ProcedureApplication{}
	assert.Nil(t, generator.AsMutations(app.Accept(g)))
}
