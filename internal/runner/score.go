package runner

// MutationScore is the final tally of a mutation testing run
// (mracket/runner/score.py's MutationScore).
type MutationScore struct {
	Total          int
	Killed         int
	ExecutionError int
}

// Survived is the number of mutants neither killed nor erroring.
func (s MutationScore) Survived() int { return s.Total - s.Killed - s.ExecutionError }
