package mutator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mracket/mracket-go/internal/ast"
	"github.com/mracket/mracket-go/internal/lexer"
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

// TestMutatorTwoMutants covers spec.md §8's `(+ 1)` scenario: one
// application, two configured replacements, two mutations total.
func TestMutatorTwoMutants(t *testing.T) {
	program := mustParseProgram(t, "#lang racket\n(+ 1)")
	m := &mutator.Mutator{
		Generators: []generator.Generator{
			&generator.ProcedureReplacement{Replacements: map[string][]string{"+": {"-", "*"}}},
		},
	}
	muts := m.GenerateMutations(program)
	assert.Len(t, muts, 2)
}

// TestMutatorSixMutants covers spec.md §8's `(+ 1 (+ 2 3))` scenario: two
// applications of `+`, three configured replacements, six mutations total.
func TestMutatorSixMutants(t *testing.T) {
	program := mustParseProgram(t, "#lang racket\n(+ 1 (+ 2 3))")
	m := &mutator.Mutator{
		Generators: []generator.Generator{
			&generator.ProcedureReplacement{Replacements: map[string][]string{"+": {"-", "*", "/"}}},
		},
	}
	muts := m.GenerateMutations(program)
	assert.Len(t, muts, 6)
}

// TestMutatorNameSpecificMutatorOverridesGenerators covers the
// name-specific mutator scenario: `f`'s body is mutated only by its own
// sub-mutator, so the program-wide generator set never sees it.
func TestMutatorNameSpecificMutatorOverridesGenerators(t *testing.T) {
	program := mustParseProgram(t, "#lang racket\n(define f (+ 1 2))\n(define g (+ 3 4))")

	general := &generator.ProcedureReplacement{Replacements: map[string][]string{"+": {"-"}}}
	subOnly := &generator.ProcedureReplacement{Replacements: map[string][]string{"+": {"-", "*"}}}

	m := &mutator.Mutator{
		Generators: []generator.Generator{general},
		NameSpecificMutators: map[string]*mutator.Mutator{
			"f": {Generators: []generator.Generator{subOnly}},
		},
	}
	muts := m.GenerateMutations(program)

	// f's application is visited only by subOnly (2 mutations); g's
	// application is visited only by general (1 mutation).
	assert.Len(t, muts, 3)
}

// TestMutatorDoesNotRecurseIntoTestCaseOrLibraryRequire asserts that the
// mutator never proposes mutations inside test-case arguments or
// library-require names, even when a generator would otherwise match.
func TestMutatorDoesNotRecurseIntoTestCaseOrLibraryRequire(t *testing.T) {
	program := mustParseProgram(t, "#lang racket\n(check-expect (+ 1 2) 3)\n(require racket/list)")
	m := &mutator.Mutator{
		Generators: []generator.Generator{
			&generator.ProcedureReplacement{Replacements: map[string][]string{"+": {"-"}}},
		},
	}
	muts := m.GenerateMutations(program)
	assert.Empty(t, muts)
}
