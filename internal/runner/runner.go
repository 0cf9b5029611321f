package runner

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/mracket/mracket-go/internal/errs"
	"github.com/mracket/mracket-go/internal/lexer"
	"github.com/mracket/mracket-go/internal/mutation/applier"
	"github.com/mracket/mracket-go/internal/mutation/mutator"
	"github.com/mracket/mracket-go/internal/parser"
	"github.com/mracket/mracket-go/internal/reader"
)

// DrRacketPrefix is the literal prefix every input file must start with
// (spec.md §6: "Input file precondition").
const DrRacketPrefix = ";; The first three lines of this file were inserted by DrRacket."

const (
	defaultMaxProcesses = 100
	defaultTimeout      = 10 * time.Second
	defaultInterpreter  = "racket"
)

// Runner drives one file through the full pipeline: precondition check,
// unmodified run, parse, mutate, apply, schedule (mracket/runner/
// __init__.py's Runner).
type Runner struct {
	Mutator *mutator.Mutator

	// Interpreter is the executable invoked as `<interpreter> <tempfile>`.
	// Defaults to "racket" if empty.
	Interpreter string
	// MaxProcesses bounds concurrent interpreter child processes. Defaults
	// to 100 if zero.
	MaxProcesses int
	// Timeout is the per-invocation wall-clock budget. Defaults to 10s if
	// zero.
	Timeout time.Duration
}

func (r *Runner) interpreter() string {
	if r.Interpreter == "" {
		return defaultInterpreter
	}
	return r.Interpreter
}

func (r *Runner) maxProcesses() int {
	if r.MaxProcesses == 0 {
		return defaultMaxProcesses
	}
	return r.MaxProcesses
}

func (r *Runner) timeout() time.Duration {
	if r.Timeout == 0 {
		return defaultTimeout
	}
	return r.Timeout
}

// checkInterpreter confirms the configured interpreter is discoverable on
// the search path (spec.md §4.8 step 1), splitting it with the same
// shellquote rules runInterpreter uses so a configured
// "racket -I racket/base" is checked by its actual executable name.
func (r *Runner) checkInterpreter() error {
	words, err := shellquote.Split(r.interpreter())
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return errors.New("empty interpreter command")
	}
	_, err = exec.LookPath(words[0])
	return err
}

// readerFailureReason classifies err as ReaderError when it carries a
// reader.Error (lexer.Error or parser.Error), falling back to
// UnknownError otherwise.
func readerFailureReason(err error) FailureReason {
	var rerr reader.Error
	if errors.As(err, &rerr) {
		return ReaderError
	}
	return UnknownError
}

// Run executes the pipeline against the Racket source at filepath. Per
// spec.md §4.8, the interpreter's presence on the search path is checked
// first, before the file is even read (step 1), followed by the
// DrRacket-prefix precondition (step 2).
func (r *Runner) Run(ctx context.Context, filepath string) Result {
	if err := r.checkInterpreter(); err != nil {
		return &Failure{Filepath: filepath, Reason: UnknownError, Cause: err.Error()}
	}

	data, err := os.ReadFile(filepath)
	if err != nil {
		return &Failure{Filepath: filepath, Reason: UnknownError, Cause: err.Error()}
	}
	source := string(data)

	if !strings.HasPrefix(source, DrRacketPrefix) {
		return &Failure{Filepath: filepath, Reason: NotDrRackety}
	}

	unmodified, failure := r.runUnmodified(ctx, source)
	if failure != nil {
		failure.Filepath = filepath
		return failure
	}

	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return &Failure{Filepath: filepath, Reason: readerFailureReason(err), Cause: errs.Tagged("lexer", err).Error()}
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		return &Failure{Filepath: filepath, Reason: readerFailureReason(err), Cause: errs.Tagged("parser", err).Error()}
	}

	mutations := r.Mutator.GenerateMutations(program)
	mutants := (&applier.Applier{Program: program, Mutations: mutations}).ApplyMutations()
	mutantResults := r.runMutants(ctx, mutants)

	return &Success{
		Filepath:         filepath,
		Mutations:        mutations,
		UnmodifiedResult: unmodified,
		MutantResults:    mutantResults,
	}
}

// runUnmodified runs the program as-is (before any mutation) and
// confirms its test suite is green, per spec.md §4.8 step 4: a mutation
// score is meaningless unless the original program passes its own tests.
func (r *Runner) runUnmodified(ctx context.Context, source string) (ProgramOutput, *Failure) {
	prog, err := newTempProgram(source)
	if err != nil {
		return ProgramOutput{}, &Failure{Reason: UnknownError, Cause: err.Error()}
	}
	defer prog.delete()

	result, err := runInterpreter(ctx, r.interpreter(), prog.path, r.timeout())
	if err != nil {
		return ProgramOutput{}, &Failure{Reason: UnknownError, Cause: err.Error()}
	}
	if result.TimedOut || result.ReturnCode != 0 || result.Stderr != "" {
		return ProgramOutput{}, &Failure{
			Reason:     NonZeroUnmodifiedReturncode,
			ReturnCode: result.ReturnCode,
			Stderr:     result.Stderr,
		}
	}

	out := ParseOutput(result.Stdout)
	if out.Failed > 0 {
		return ProgramOutput{}, &Failure{Reason: UnmodifiedTestFailure}
	}
	return out, nil
}
