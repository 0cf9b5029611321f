// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// This CLI utility mutation-tests a single Racket program against a
// declarative mutator configuration.
//
// Usage:
//
//	mracket <filepath> -c <config> [-o <output>] [-f] [-v]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"

	"github.com/mracket/mracket-go/internal/config"
	"github.com/mracket/mracket-go/internal/errs"
	"github.com/mracket/mracket-go/internal/lexer"
	"github.com/mracket/mracket-go/internal/parser"
	"github.com/mracket/mracket-go/internal/runner"
)

// exitError carries the process exit code a failure should produce
// (spec.md §6: "Exit codes: 0 success; 1 file-not-found or
// output-already-exists; 2 any other failure").
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func main() {
	var configPath, outputPath string
	var force, verbose bool

	rootCmd := &cobra.Command{
		Use:                   "mracket <filepath> -c <config> [-o <output>] [-f] [-v]",
		Short:                 "mutation testing for Racket programs",
		Args:                  cobra.ExactArgs(1),
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], configPath, outputPath, force, verbose)
		},
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errs.Tagged("mracket", err)
	})

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "``path to the mutation configuration file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "``output JSON path (default <cwd>/<basename>-analysis.json)")
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "allow overwriting an existing output file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "raise log level to debug")
	_ = rootCmd.MarkFlagRequired("config")

	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, errs.Tagged("mracket", exitErr.err))
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func run(ctx context.Context, inputPath, configPath, outputPath string, force, verbose bool) error {
	if _, err := os.Stat(inputPath); err != nil {
		return &exitError{code: 1, err: fmt.Errorf("%s not found", inputPath)}
	}

	if outputPath == "" {
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		outputPath = filepath.Join(".", base+"-analysis.json")
	}
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return &exitError{code: 1, err: fmt.Errorf("%s already exists (use -f to overwrite)", outputPath)}
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return &exitError{code: 2, err: err}
	}
	mutator, err := cfg.BuildMutator()
	if err != nil {
		return &exitError{code: 2, err: err}
	}

	if verbose {
		source, err := os.ReadFile(inputPath)
		if err == nil {
			if tokens, err := lexer.Tokenize(string(source)); err == nil {
				if program, err := parser.Parse(tokens); err == nil {
					fmt.Fprintln(os.Stderr, litter.Sdump(program))
					fmt.Fprintln(os.Stderr, litter.Sdump(mutator.GenerateMutations(program)))
				}
			}
		}
	}

	r := &runner.Runner{Mutator: mutator}
	result := r.Run(ctx, inputPath)

	out, err := json.MarshalIndent(result.ToDict(), "", "  ")
	if err != nil {
		return &exitError{code: 2, err: err}
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return &exitError{code: 2, err: err}
	}

	if !result.Succeeded() {
		return &exitError{code: 2, err: fmt.Errorf("run failed, see %s", outputPath)}
	}
	return nil
}
