package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	shellquote "github.com/kballard/go-shellquote"
)

// ProgramSuffix is appended to every program (unmodified or mutant)
// before it is handed to the interpreter, so that its test suite actually
// runs (spec.md §4.8 step 4).
const ProgramSuffix = "\n(require test-engine/racket-tests)\n(test)"

// tempProgram is a Racket source file materialized under the system temp
// directory for exactly one interpreter invocation, the Go counterpart of
// mracket/runner/__init__.py's TemporaryRacketProgram. Unlike the Python
// original's poll-loop-plus-elapsed-time check, the timeout here is
// enforced by context.WithTimeout around exec.CommandContext, the same
// pattern the teacher's HTML generator uses to bound a subprocess
// (akhil.cc/mexdown/gen/html/html.go).
type tempProgram struct {
	path string
}

func newTempProgram(source string) (*tempProgram, error) {
	f, err := os.CreateTemp("", "mracket-*.rkt")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if _, err := f.WriteString(source + ProgramSuffix); err != nil {
		os.Remove(f.Name())
		return nil, err
	}
	return &tempProgram{path: f.Name()}, nil
}

// delete removes the temp file. It is always called on the same
// control-flow path that created the file, including on timeout and
// early abort (spec.md §4.8: "Resources").
func (p *tempProgram) delete() {
	os.Remove(p.path)
}

// runResult is the outcome of one interpreter invocation.
type runResult struct {
	Stdout     string
	Stderr     string
	ReturnCode int
	TimedOut   bool
}

// runInterpreter invokes `<interpreter> <path>` with no stdin and no
// extra arguments (spec.md §6: "Interpreter invocation"), killing it if
// it runs past timeout. interpreter is split with shell word-splitting
// rules (the same github.com/kballard/go-shellquote the teacher uses to
// split a directive's command string in gen/html/html.go), so a
// configured interpreter of "racket -I racket/base" works the same way a
// bare "racket" does.
func runInterpreter(ctx context.Context, interpreter, path string, timeout time.Duration) (runResult, error) {
	words, err := shellquote.Split(interpreter)
	if err != nil {
		return runResult{}, fmt.Errorf("splitting interpreter command %q: %w", interpreter, err)
	}
	if len(words) == 0 {
		return runResult{}, fmt.Errorf("empty interpreter command")
	}

	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, words[0], append(words[1:], path)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	if cctx.Err() == context.DeadlineExceeded {
		return runResult{Stdout: stdout.String(), Stderr: stderr.String(), TimedOut: true}, nil
	}
	if err == nil {
		return runResult{Stdout: stdout.String(), Stderr: stderr.String(), ReturnCode: 0}, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return runResult{Stdout: stdout.String(), Stderr: stderr.String(), ReturnCode: exitErr.ExitCode()}, nil
	}
	return runResult{}, err
}
