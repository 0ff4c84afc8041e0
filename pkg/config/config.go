// Package config loads IBEA run parameters from a YAML file, as an
// alternative to specifying every operator on the command line.
package config

import (
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/pedromig/anytime-pmnk-landscapes/pkg/ibea"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/operators"
)

// ErrInvalidConfiguration is wrapped with context and returned whenever a
// config file fails to parse or fails validation.
var ErrInvalidConfiguration = errors.New("config: invalid configuration")

// IBEAFileConfig mirrors the fields of ibea.Config in a YAML-decodable
// shape, naming operators and their rates instead of holding closures;
// ToIBEAConfig resolves the named indicator and crossover, and the mutation
// rate, into the closures ibea.Config actually needs.
type IBEAFileConfig struct {
	PopSize         int     `json:"popSize"`
	Generations     int     `json:"generations"`
	K               float64 `json:"k"`
	Adaptive        bool    `json:"adaptive"`
	TournamentSize  int     `json:"tournamentSize"`
	PoolSize        int     `json:"poolSize,omitempty"`
	Indicator       string  `json:"indicator"`
	Crossover       string  `json:"crossover,omitempty"`
	CrossoverRate   float64 `json:"crossoverRate"`
	CrossoverPoints int     `json:"crossoverPoints,omitempty"`
	MutationRate    float64 `json:"mutationRate"`
}

// Load reads and validates an IBEAFileConfig from a YAML (or JSON, which is
// valid YAML) file at path.
func Load(path string) (*IBEAFileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	var cfg IBEAFileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects non-positive dimensions and unknown operator names,
// regardless of whether this config was decoded from YAML or assembled
// from command-line flags.
func (c *IBEAFileConfig) Validate() error {
	if c.PopSize <= 0 {
		return fmt.Errorf("%w: popSize must be positive, got %d", ErrInvalidConfiguration, c.PopSize)
	}
	if c.Generations <= 0 {
		return fmt.Errorf("%w: generations must be positive, got %d", ErrInvalidConfiguration, c.Generations)
	}
	if c.K <= 0 {
		return fmt.Errorf("%w: k must be positive, got %v", ErrInvalidConfiguration, c.K)
	}
	if c.TournamentSize <= 0 {
		return fmt.Errorf("%w: tournamentSize must be positive, got %d", ErrInvalidConfiguration, c.TournamentSize)
	}
	if c.PoolSize < 0 {
		return fmt.Errorf("%w: poolSize must not be negative, got %d", ErrInvalidConfiguration, c.PoolSize)
	}
	switch c.Indicator {
	case "eps", "ihd", "":
	default:
		return fmt.Errorf("%w: unknown indicator %q, want \"eps\" or \"ihd\"", ErrInvalidConfiguration, c.Indicator)
	}
	switch c.Crossover {
	case "uc", "npc", "":
	default:
		return fmt.Errorf("%w: unknown crossover %q, want \"uc\" or \"npc\"", ErrInvalidConfiguration, c.Crossover)
	}
	return nil
}

// ToIBEAConfig resolves this file config into an ibea.Config, wiring the
// named indicator (defaulting to "eps") against ref when "ihd" is chosen,
// and the named crossover (defaulting to "uc") with its point count when
// "npc" is chosen.
func (c *IBEAFileConfig) ToIBEAConfig(ref []float64) ibea.Config {
	indicator := operators.Indicator(operators.Eps)
	if c.Indicator == "ihd" {
		indicator = operators.IHD(ref)
	}
	var crossover operators.Crossover
	if c.Crossover == "npc" {
		points := c.CrossoverPoints
		if points <= 0 {
			points = 2
		}
		crossover = operators.NPointCrossover(points, c.CrossoverRate)
	} else {
		crossover = operators.UniformCrossover(c.CrossoverRate)
	}
	poolSize := c.PoolSize
	if poolSize <= 0 {
		poolSize = c.PopSize
	}
	return ibea.Config{
		PopSize:        c.PopSize,
		Generations:    c.Generations,
		K:              c.K,
		Adaptive:       c.Adaptive,
		Indicator:      indicator,
		Crossover:      crossover,
		Mutation:       operators.UniformMutation(c.MutationRate),
		TournamentSize: c.TournamentSize,
		PoolSize:       poolSize,
	}
}
