package runner

import "github.com/mracket/mracket-go/internal/mutation"

// Result is either a *Failure or a *Success, matching the output JSON
// schema of spec.md §6 (mracket/runner/result.py's RunnerResult).
type Result interface {
	Succeeded() bool
	ToDict() map[string]any
}

// FailureReason enumerates the error taxonomy of spec.md §7
// (mracket/runner/result.py's RunnerFailure.Reason).
type FailureReason int

const (
	ReaderError FailureReason = iota
	NotDrRackety
	NotWellFormedProgram
	NonZeroUnmodifiedReturncode
	UnmodifiedTestFailure
	NonZeroMutantReturncode
	Timeout
	UnknownError
)

func (r FailureReason) String() string {
	switch r {
	case ReaderError:
		return "Reader unable to read program"
	case NotDrRackety:
		return "Program missing DrRacket prefix"
	case NotWellFormedProgram:
		return "Program not well-formed"
	case NonZeroUnmodifiedReturncode:
		return "Non-zero returncode when running unmodified source"
	case UnmodifiedTestFailure:
		return "Test failure when running unmodified source"
	case NonZeroMutantReturncode:
		return "Non-zero returncode when running mutant"
	case Timeout:
		return "Timeout exceeded"
	case UnknownError:
		return "Unknown error"
	default:
		return "Unknown error"
	}
}

// Failure is a fatal, file-level outcome: the whole run aborts (spec.md
// §7: "failures during the setup phases ... always abort").
type Failure struct {
	Filepath   string
	Reason     FailureReason
	Cause      string
	ReturnCode int
	Stderr     string
}

func (f *Failure) Error() string        { return f.Reason.String() }
func (f *Failure) Succeeded() bool       { return false }
func (f *Failure) ToDict() map[string]any {
	d := map[string]any{
		"filepath":             f.Filepath,
		"execution-succeeded": false,
		"reason":               f.Reason.String(),
	}
	if f.Cause != "" {
		d["cause"] = f.Cause
	}
	return d
}

// Success is a completed run: the unmodified program passed, and every
// mutant (possibly zero) was scored (mracket/runner/result.py's
// RunnerSuccess).
type Success struct {
	Filepath         string
	Mutations        []mutation.Mutation
	UnmodifiedResult ProgramOutput
	MutantResults    []MutantOutput
}

func (s *Success) Succeeded() bool { return true }

// Score aggregates MutantResults into total/killed/execution-error
// counts (spec.md §8: `score.total = killed + survived + execution_error`).
func (s *Success) Score() MutationScore {
	score := MutationScore{Total: len(s.MutantResults)}
	for _, r := range s.MutantResults {
		switch {
		case r.ExecutionError():
			score.ExecutionError++
		case r.Killed():
			score.Killed++
		}
	}
	return score
}

func (s *Success) ToDict() map[string]any {
	score := s.Score()
	summary := map[string]any{"total": score.Total, "killed": score.Killed}
	if score.ExecutionError > 0 {
		summary["execution-error"] = score.ExecutionError
	}

	mutationResults := make([]map[string]any, 0, len(s.MutantResults))
	for _, r := range s.MutantResults {
		entry := map[string]any{"explanation": r.Mutation.Explanation}
		if r.Stderr != "" {
			entry["execution-error"] = r.Stderr
		} else {
			entry["killed"] = r.Killed()
		}
		mutationResults = append(mutationResults, entry)
	}

	return map[string]any{
		"filepath":             s.Filepath,
		"execution-succeeded": true,
		"summary":              summary,
		"mutations":            mutationResults,
	}
}
