// Package runner executes a program and its mutants against an external
// Racket interpreter and aggregates the results into a mutation score,
// ported from mracket/runner/__init__.py, output.py, result.py, score.py,
// and execution.py.
package runner

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mracket/mracket-go/internal/mutation"
)

var (
	reTestsPassedN  = regexp.MustCompile(`(\d+) tests passed!`)
	reRanZeroPassed = regexp.MustCompile(`(?s)Ran (\d+) test.*?0 tests passed\.`)
	reSomeFailed    = regexp.MustCompile(`(\d+) of the (\d+) tests failed\.`)
)

// ProgramOutput is a Racket program's classified test report, parsed from
// its stdout per spec.md §4.9's ordered rule list (mracket/runner/
// output.py's ProgramOutput).
type ProgramOutput struct {
	Stdout string
	Passed int
	Failed int
}

// ParseOutput classifies stdout into a pass/fail count using the same
// ordered rules as the reference test-report parser: the first matching
// rule wins, and no rule matching yields passed=0, failed=0.
func ParseOutput(stdout string) ProgramOutput {
	out := ProgramOutput{Stdout: stdout}
	switch {
	case strings.Contains(stdout, "The test passed!"):
		out.Passed = 1
	case strings.Contains(stdout, "Both tests passed!"):
		out.Passed = 2
	default:
		if m := reTestsPassedN.FindStringSubmatch(stdout); m != nil {
			out.Passed = mustAtoi(m[1])
		} else if m := reRanZeroPassed.FindStringSubmatch(stdout); m != nil {
			out.Failed = mustAtoi(m[1])
		} else if m := reSomeFailed.FindStringSubmatch(stdout); m != nil {
			failed, total := mustAtoi(m[1]), mustAtoi(m[2])
			out.Failed = failed
			out.Passed = total - failed
		}
	}
	return out
}

// Total is the number of test cases the report accounts for.
func (o ProgramOutput) Total() int { return o.Passed + o.Failed }

// MutantOutput is one mutant's execution result: its classified test
// report plus the raw process outcome needed to tell an execution error
// from a survived mutant (spec.md §4.8: "Output classification").
type MutantOutput struct {
	ProgramOutput
	Mutation   mutation.Mutation
	ReturnCode int
	Stderr     string
}

// Killed reports whether the mutant's test suite caught the mutation.
func (o MutantOutput) Killed() bool { return o.Failed > 0 }

// ExecutionError reports whether the mutant never produced a usable test
// report, e.g. it crashed, was killed for exceeding the timeout, or wrote
// to stderr.
func (o MutantOutput) ExecutionError() bool { return o.Stderr != "" || o.ReturnCode != 0 }

// mustAtoi is safe here: both capture groups are regexp `\d+` matches.
func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
