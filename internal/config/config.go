// Package config loads the declarative mutator configuration file
// described in spec.md §6 and builds the runtime mutator.Mutator it
// describes. There is no Python equivalent file to port from — the
// reference implementation wires its generators in __main__.py by hand —
// so this schema and its loader are new, grounded on the generator
// constructors in internal/mutation/generator and encoded with
// encoding/json the way the rest of this module favors stdlib only where
// nothing in the example corpus models the concern better.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mracket/mracket-go/internal/mutation/generator"
	"github.com/mracket/mracket-go/internal/mutation/mutator"
)

const (
	typeProcedureReplacement            = "procedure replacement"
	typeProcedureApplicationReplacement = "procedure application replacement"
)

// Generator is one `{ type, replacements }` entry of the config schema.
type Generator struct {
	Type         string              `json:"type"`
	Replacements map[string][]string `json:"replacements"`
}

// ProcedureMutator is one entry of `mutators.procedure-specific`: a
// generator list used instead of the general one inside the body of any
// definition of ProcedureName.
type ProcedureMutator struct {
	ProcedureName string      `json:"procedure-name"`
	Mutator       []Generator `json:"mutator"`
}

// Mutators is the top-level `mutators` object of the config schema.
type Mutators struct {
	General           []Generator        `json:"general"`
	ProcedureSpecific []ProcedureMutator `json:"procedure-specific,omitempty"`
}

// Config is the full mutator configuration file (spec.md §6: "Config
// schema (declarative)").
type Config struct {
	Mutators Mutators `json:"mutators"`
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// BuildMutator constructs the mutator.Mutator the config describes:
// generators for the general list, plus a name-scoped sub-Mutator per
// procedure-specific entry (internal/mutation/mutator's Mutator.
// NameSpecificMutators, mracket/mutation/mutator.py's name_specific_mutators).
func (c *Config) BuildMutator() (*mutator.Mutator, error) {
	general, err := buildGenerators(c.Mutators.General)
	if err != nil {
		return nil, fmt.Errorf("mutators.general: %w", err)
	}

	var nameSpecific map[string]*mutator.Mutator
	if len(c.Mutators.ProcedureSpecific) > 0 {
		nameSpecific = make(map[string]*mutator.Mutator, len(c.Mutators.ProcedureSpecific))
		for _, entry := range c.Mutators.ProcedureSpecific {
			gens, err := buildGenerators(entry.Mutator)
			if err != nil {
				return nil, fmt.Errorf("mutators.procedure-specific[%s]: %w", entry.ProcedureName, err)
			}
			nameSpecific[entry.ProcedureName] = &mutator.Mutator{Generators: gens}
		}
	}

	return &mutator.Mutator{Generators: general, NameSpecificMutators: nameSpecific}, nil
}

func buildGenerators(entries []Generator) ([]generator.Generator, error) {
	gens := make([]generator.Generator, 0, len(entries))
	for _, entry := range entries {
		switch entry.Type {
		case typeProcedureReplacement:
			gens = append(gens, &generator.ProcedureReplacement{Replacements: entry.Replacements})
		case typeProcedureApplicationReplacement:
			g, err := generator.NewProcedureApplicationReplacement(entry.Replacements)
			if err != nil {
				return nil, err
			}
			gens = append(gens, g)
		default:
			return nil, fmt.Errorf("unknown generator type %q", entry.Type)
		}
	}
	return gens, nil
}
