// Package ratio is a rule-based symbolic reasoning engine. A System
// bundles an append-only knowledge base of expression-tree facts, a
// reasoning graph indexing facts by free variable, and an ordered rule
// set applied by the inference engine.
//
// The System is unsynchronized shared mutable state: concurrent AddFact
// calls, or AddFact concurrent with reads, must be serialized by the
// caller. Read-only inference over a stable knowledge base is safe to
// run concurrently with other reads.
package ratio

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/symbolica/ratio/pkg/ratio/engine"
	"github.com/symbolica/ratio/pkg/ratio/expr"
	"github.com/symbolica/ratio/pkg/ratio/internalerr"
	"github.com/symbolica/ratio/pkg/ratio/kb"
	"github.com/symbolica/ratio/pkg/ratio/rules"
)

// System is the reasoning-system facade.
type System struct {
	name        string
	description string
	kb          *kb.KnowledgeBase
	graph       *kb.Graph
	rules       []rules.Rule
	eng         *engine.Engine
}

// Options configures a System.
type Options struct {
	// Name identifies the system. Required.
	Name string

	// Description is free text.
	Description string

	// Rules is the ordered rule set. Nil selects the canonical rules;
	// an explicit empty slice yields a system that derives nothing.
	Rules []rules.Rule

	// Facts pre-populates the knowledge base in order.
	Facts []expr.Expr

	// Logger records swallowed rule faults. Optional.
	Logger *zap.Logger
}

// New creates a System. Malformed options (empty name, nil rule or fact
// entries) are the only hard failure surface and are reported as
// internalerr.ErrInvalidConfig.
func New(opts Options) (*System, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("system name is required: %w", internalerr.ErrInvalidConfig)
	}
	for i, r := range opts.Rules {
		if r == nil {
			return nil, fmt.Errorf("rule %d is nil: %w", i, internalerr.ErrInvalidConfig)
		}
	}
	for i, f := range opts.Facts {
		if f == nil {
			return nil, fmt.Errorf("fact %d is nil: %w", i, internalerr.ErrInvalidConfig)
		}
	}

	ruleset := opts.Rules
	if ruleset == nil {
		ruleset = rules.Canonical()
	}

	s := &System{
		name:        opts.Name,
		description: opts.Description,
		kb:          kb.New(),
		graph:       kb.NewGraph(),
		rules:       ruleset,
		eng:         engine.New(engine.Options{Logger: opts.Logger}),
	}
	for _, f := range opts.Facts {
		s.AddFact(f)
	}
	return s, nil
}

// Name returns the system name.
func (s *System) Name() string { return s.name }

// Description returns the free-text description.
func (s *System) Description() string { return s.description }

// Rules returns the ordered rule set.
func (s *System) Rules() []rules.Rule {
	out := make([]rules.Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// AddFact appends a fact to the knowledge base and records it in the
// reasoning graph under each of its free variables. Facts are never
// de-duplicated, removed, or reordered.
func (s *System) AddFact(fact expr.Expr) {
	s.kb.Add(fact)
	s.graph.Record(fact)
}

// Facts returns the knowledge base in insertion order. Callers must not
// modify the returned slice.
func (s *System) Facts() []expr.Expr { return s.kb.Facts() }

// Graph returns the reasoning graph.
func (s *System) Graph() *kb.Graph { return s.graph }

// Infer applies every rule to the probe and returns the derivations in
// rule-registration order, duplicates included.
func (s *System) Infer(probe expr.Expr) []expr.Expr {
	return s.eng.Infer(s.kb.Facts(), s.rules, probe)
}

// Saturate forward-chains with the default round bound.
func (s *System) Saturate() []expr.Expr {
	return s.SaturateN(engine.DefaultMaxRounds)
}

// SaturateN forward-chains for at most maxRounds rounds and returns the
// newly derived facts grouped by round. The knowledge base itself is not
// modified; add derivations back with AddFact if they should persist.
func (s *System) SaturateN(maxRounds int) []expr.Expr {
	return s.eng.Saturate(s.kb.Facts(), s.rules, maxRounds)
}
