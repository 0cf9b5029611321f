package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mracket/mracket-go/internal/mutation/generator"
	"github.com/mracket/mracket-go/internal/mutation/mutator"
	"github.com/mracket/mracket-go/internal/runner"
)

// fakeInterpreter writes a tiny shell stand-in for the real `racket`
// executable: it inspects the program text for the one substring that the
// `+`-to-`-` mutation of f(x) would introduce, and reports test results
// accordingly, without needing a Racket installation present.
func fakeInterpreter(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-racket.sh")
	script := "#!/bin/sh\n" +
		"if grep -q '(- x 1)' \"$1\"; then\n" +
		"  echo '1 of the 2 tests failed.'\n" +
		"else\n" +
		"  echo 'Both tests passed!'\n" +
		"fi\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

// TestRunEndToEndScoresOneKilledOneSurvived covers spec.md §8's scenario 6:
// a fixture with two check-expects where only one is sensitive to a
// `+`-to-`-` mutation scores MutationScore{Total: 2, Killed: 1,
// ExecutionError: 0}.
func TestRunEndToEndScoresOneKilledOneSurvived(t *testing.T) {
	r := &runner.Runner{
		Mutator: &mutator.Mutator{
			Generators: []generator.Generator{
				&generator.ProcedureReplacement{Replacements: map[string][]string{"+": {"-"}}},
			},
		},
		Interpreter: fakeInterpreter(t),
		Timeout:     2 * time.Second,
	}

	result := r.Run(context.Background(), filepath.Join("testdata", "score-2.rkt"))
	require.True(t, result.Succeeded())

	success, ok := result.(*runner.Success)
	require.True(t, ok)

	score := success.Score()
	assert.Equal(t, runner.MutationScore{Total: 2, Killed: 1, ExecutionError: 0}, score)
	assert.Equal(t, 1, score.Survived())
}

func TestRunMissingDrRacketPrefixFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.rkt")
	require.NoError(t, os.WriteFile(path, []byte("#lang racket\n(+ 1 2)"), 0o644))

	r := &runner.Runner{Mutator: &mutator.Mutator{}, Interpreter: fakeInterpreter(t)}
	result := r.Run(context.Background(), path)

	require.False(t, result.Succeeded())
	failure, ok := result.(*runner.Failure)
	require.True(t, ok)
	assert.Equal(t, runner.NotDrRackety, failure.Reason)
}

func TestRunMissingFileFails(t *testing.T) {
	r := &runner.Runner{Mutator: &mutator.Mutator{}, Interpreter: fakeInterpreter(t)}
	result := r.Run(context.Background(), filepath.Join(t.TempDir(), "missing.rkt"))

	require.False(t, result.Succeeded())
	failure, ok := result.(*runner.Failure)
	require.True(t, ok)
	assert.Equal(t, runner.UnknownError, failure.Reason)
}

// TestRunMissingInterpreterFails covers spec.md §4.8 step 1: the
// interpreter's presence on the search path is checked before the input
// file is even read.
func TestRunMissingInterpreterFails(t *testing.T) {
	r := &runner.Runner{Mutator: &mutator.Mutator{}, Interpreter: "mracket-definitely-not-on-path"}
	result := r.Run(context.Background(), filepath.Join(t.TempDir(), "missing.rkt"))

	require.False(t, result.Succeeded())
	failure, ok := result.(*runner.Failure)
	require.True(t, ok)
	assert.Equal(t, runner.UnknownError, failure.Reason)
}
