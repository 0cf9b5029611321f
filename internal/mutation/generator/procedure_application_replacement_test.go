package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mracket/mracket-go/internal/ast"
	"github.com/mracket/mracket-go/internal/mutation/generator"
)

func TestNewProcedureApplicationReplacementParsesSnippets(t *testing.T) {
	g, err := generator.NewProcedureApplicationReplacement(map[string][]string{
		"+": {"(- a b)", "0"},
	})
	require.NoError(t, err)
	require.Len(t, g.Replacements["+"], 2)
	_, ok := g.Replacements["+"][0].(*ast.ProcedureApplication)
	assert.True(t, ok)
	_, ok = g.Replacements["+"][1].(*ast.Literal)
	assert.True(t, ok)
}

func TestNewProcedureApplicationReplacementMalformedSnippetErrors(t *testing.T) {
	_, err := generator.NewProcedureApplicationReplacement(map[string][]string{
		"+": {"(unterminated"},
	})
	require.Error(t, err)
}

// TestProcedureApplicationReplacementTargetsWholeApplication covers
// spec.md §8's scenario where the whole `(+ a b)` node, not just its head
// symbol, is replaced.
func TestProcedureApplicationReplacementTargetsWholeApplication(t *testing.T) {
	program := mustParseProgram(t, "#lang racket\n(+ a b)")
	app := program.Statements[0].(*ast.ProcedureApplication)

	g, err := generator.NewProcedureApplicationReplacement(map[string][]string{"+": {"(- a b)"}})
	require.NoError(t, err)

	muts := generator.AsMutations(app.Accept(g))
	require.Len(t, muts, 1)
	assert.Same(t, app, muts[0].Original)
	_, ok := muts[0].Replacement.(*ast.ProcedureApplication)
	assert.True(t, ok)
}
