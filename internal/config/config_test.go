package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mracket/mracket-go/internal/config"
	"github.com/mracket/mracket-go/internal/lexer"
	"github.com/mracket/mracket-go/internal/parser"
)

const sampleConfig = `{
  "mutators": {
    "general": [
      {"type": "procedure replacement", "replacements": {"+": ["-", "*"]}}
    ],
    "procedure-specific": [
      {
        "procedure-name": "f",
        "mutator": [
          {"type": "procedure application replacement", "replacements": {"+": ["(- a b)"]}}
        ]
      }
    ]
  }
}`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadParsesSchema(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Mutators.General, 1)
	assert.Equal(t, "procedure replacement", cfg.Mutators.General[0].Type)
	assert.Equal(t, []string{"-", "*"}, cfg.Mutators.General[0].Replacements["+"])

	require.Len(t, cfg.Mutators.ProcedureSpecific, 1)
	assert.Equal(t, "f", cfg.Mutators.ProcedureSpecific[0].ProcedureName)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadMalformedJSONErrors(t *testing.T) {
	path := writeConfig(t, "{not json")
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestBuildMutatorWiresGeneralAndProcedureSpecific(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	mutator, err := cfg.BuildMutator()
	require.NoError(t, err)
	require.Len(t, mutator.Generators, 1)
	require.Contains(t, mutator.NameSpecificMutators, "f")

	tokens, err := lexer.Tokenize("#lang racket\n(define f (+ 1 2))")
	require.NoError(t, err)
	program, err := parser.Parse(tokens)
	require.NoError(t, err)

	muts := mutator.GenerateMutations(program)
	// "+" inside f's body is visited only by the procedure-specific
	// sub-mutator (one "procedure application replacement" mutation); the
	// general "procedure replacement" generator never sees it.
	require.Len(t, muts, 1)
}

func TestBuildMutatorUnknownGeneratorTypeErrors(t *testing.T) {
	path := writeConfig(t, `{"mutators": {"general": [{"type": "bogus", "replacements": {}}]}}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	_, err = cfg.BuildMutator()
	assert.Error(t, err)
}
