// Package config loads reasoning-system definitions from YAML.
//
// A definition names the system, selects canonical rules by name, and
// lists initial facts in prefix syntax:
//
//	name: propositional
//	description: demo system
//	rules: [modus-ponens, transitivity]
//	max_rounds: 3
//	facts:
//	  - implies(p, q)
//	  - implies(q, r)
package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/symbolica/ratio/pkg/ratio"
	"github.com/symbolica/ratio/pkg/ratio/engine"
	"github.com/symbolica/ratio/pkg/ratio/expr"
	"github.com/symbolica/ratio/pkg/ratio/internalerr"
	"github.com/symbolica/ratio/pkg/ratio/rules"
)

// Config is a YAML reasoning-system definition.
type Config struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Rules       []string `yaml:"rules"`
	MaxRounds   int      `yaml:"max_rounds"`
	Facts       []string `yaml:"facts"`
}

// Load reads a definition from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse reads a definition from YAML bytes.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	return &c, nil
}

// Rounds returns the configured saturation bound, or the engine default
// when unset.
func (c *Config) Rounds() int {
	if c.MaxRounds > 0 {
		return c.MaxRounds
	}
	return engine.DefaultMaxRounds
}

// Build resolves the definition into a System. An unknown rule name or
// an unparsable fact is construction misuse and fails hard. An optional
// zap logger is passed through to the system.
func (c *Config) Build(log ...*zap.Logger) (*ratio.System, error) {
	var ruleset []rules.Rule
	for _, name := range c.Rules {
		r, ok := rules.ByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown rule %q: %w", name, internalerr.ErrInvalidConfig)
		}
		ruleset = append(ruleset, r)
	}

	var facts []expr.Expr
	for i, src := range c.Facts {
		e, err := expr.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("fact %d: %w", i, err)
		}
		facts = append(facts, e)
	}

	opts := ratio.Options{
		Name:        c.Name,
		Description: c.Description,
		Rules:       ruleset,
		Facts:       facts,
	}
	if len(log) > 0 {
		opts.Logger = log[0]
	}
	return ratio.New(opts)
}
