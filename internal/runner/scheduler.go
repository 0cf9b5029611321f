package runner

import (
	"context"
	"sync"

	"github.com/mracket/mracket-go/internal/mutation"
)

// runMutants executes every mutant against the interpreter, bounded to at
// most MaxProcesses concurrent child processes (spec.md §4.8:
// "Scheduler"). This replaces the reference implementation's
// single-threaded poll loop (`time.sleep(0.1)` between scans of a
// running-programs list) with a goroutine pool gated by a buffered
// channel used as a semaphore — the idiomatic Go expression of the same
// bounded-concurrency contract, with cancellation and per-mutant timeouts
// carried by context instead of wall-clock bookkeeping.
//
// Per spec.md §5, result order need not match submission order: results
// are collected as goroutines finish, not in mutant-list order.
func (r *Runner) runMutants(ctx context.Context, mutants []mutation.Mutant) []MutantOutput {
	if len(mutants) == 0 {
		return nil
	}

	sem := make(chan struct{}, r.maxProcesses())
	results := make(chan MutantOutput, len(mutants))
	var wg sync.WaitGroup

	for _, m := range mutants {
		m := m
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			results <- r.runMutant(ctx, m)
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]MutantOutput, 0, len(mutants))
	for res := range results {
		out = append(out, res)
	}
	return out
}

func (r *Runner) runMutant(ctx context.Context, m mutation.Mutant) MutantOutput {
	prog, err := newTempProgram(m.Source)
	if err != nil {
		return MutantOutput{Mutation: m.Mutation, Stderr: err.Error()}
	}
	defer prog.delete()

	result, err := runInterpreter(ctx, r.interpreter(), prog.path, r.timeout())
	if err != nil {
		return MutantOutput{Mutation: m.Mutation, Stderr: err.Error()}
	}
	if result.TimedOut {
		return MutantOutput{Mutation: m.Mutation, Stderr: "timeout"}
	}
	return MutantOutput{
		ProgramOutput: ParseOutput(result.Stdout),
		Mutation:      m.Mutation,
		ReturnCode:    result.ReturnCode,
		Stderr:        result.Stderr,
	}
}
