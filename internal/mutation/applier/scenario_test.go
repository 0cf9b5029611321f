package applier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mracket/mracket-go/internal/mutation"
	"github.com/mracket/mracket-go/internal/mutation/applier"
	"github.com/mracket/mracket-go/internal/mutation/generator"
	"github.com/mracket/mracket-go/internal/mutation/mutator"
)

func mutantSources(t *testing.T, mutants []mutation.Mutant) []string {
	t.Helper()
	out := make([]string, len(mutants))
	for i, m := range mutants {
		out[i] = m.Source
	}
	return out
}

// TestAndOrProcedureApplicationReplacementFourMutants covers spec.md §8's
// scenario 3: `(and (or #t))` with ProcedureApplicationReplacement
// covering both "and" and "or" yields four mutants, two from replacing the
// whole outer application and two from replacing only the inner one.
func TestAndOrProcedureApplicationReplacementFourMutants(t *testing.T) {
	program := mustParseProgram(t, "#lang racket\n(and (or #t))")

	g, err := generator.NewProcedureApplicationReplacement(map[string][]string{
		"and": {"#t", "#f"},
		"or":  {"#t", "#f"},
	})
	require.NoError(t, err)

	m := &mutator.Mutator{Generators: []generator.Generator{g}}
	muts := m.GenerateMutations(program)
	require.Len(t, muts, 4)

	mutants := (&applier.Applier{Program: program, Mutations: muts}).ApplyMutations()
	require.Len(t, mutants, 4)

	assert.ElementsMatch(t, []string{
		"#lang racket\n#t",
		"#lang racket\n#f",
		"#lang racket\n(and #t)",
		"#lang racket\n(and #f)",
	}, mutantSources(t, mutants))
}

// TestListToEmptyQuoteOneMutant covers spec.md §8's scenario 4:
// `(list 1 2 3)` with ProcedureApplicationReplacement({"list": ["'()"]})
// yields one mutant whose body is `(quote ())`.
func TestListToEmptyQuoteOneMutant(t *testing.T) {
	program := mustParseProgram(t, "#lang racket\n(list 1 2 3)")

	g, err := generator.NewProcedureApplicationReplacement(map[string][]string{"list": {"'()"}})
	require.NoError(t, err)

	m := &mutator.Mutator{Generators: []generator.Generator{g}}
	muts := m.GenerateMutations(program)
	require.Len(t, muts, 1)

	mutants := (&applier.Applier{Program: program, Mutations: muts}).ApplyMutations()
	require.Len(t, mutants, 1)
	assert.Equal(t, "#lang racket\n(quote ())", mutants[0].Source)
}
