// Package rules defines the inference rule contract and the canonical
// rule set: modus ponens, transitivity, symmetry, and substitution.
//
// A rule is a pure function over an ordered fact sequence and a probe
// expression. "No derivation possible" is the normal outcome and is
// signaled by the ok result, never by an error. Rules must not mutate
// the fact sequence they are handed.
package rules

import (
	"github.com/symbolica/ratio/pkg/ratio/ast"
	"github.com/symbolica/ratio/pkg/ratio/expr"
)

// Rule derives at most one new fact from a knowledge base and a probe.
type Rule interface {
	Name() string

	// Apply returns a derived fact and true, or nil and false when no
	// derivation is possible.
	Apply(kb []expr.Expr, probe expr.Expr) (expr.Expr, bool)
}

// Canonical returns the four canonical rules in reference order:
// modus ponens, transitivity, symmetry, substitution.
func Canonical() []Rule {
	return []Rule{ModusPonens(), Transitivity(), Symmetry(), Substitution()}
}

// ByName resolves a canonical rule by its registered name.
func ByName(name string) (Rule, bool) {
	for _, r := range Canonical() {
		if r.Name() == name {
			return r, true
		}
	}
	return nil, false
}

// ModusPonens scans the knowledge base in order for the first
// implication whose antecedent equals the probe and returns its
// consequent.
func ModusPonens() Rule { return modusPonens{} }

type modusPonens struct{}

func (modusPonens) Name() string { return "modus-ponens" }

func (modusPonens) Apply(kb []expr.Expr, probe expr.Expr) (expr.Expr, bool) {
	for _, f := range kb {
		ant, cons, ok := implicationParts(f)
		if !ok {
			continue
		}
		if ant.Equal(probe) {
			return cons, true
		}
	}
	return nil, false
}

// Transitivity chains the first pair of implications A ⇒ B, B ⇒ C found
// in the knowledge base into A ⇒ C. The outer implication is scanned in
// fact order; for each outer, the full implication list is scanned as
// inner. The probe is ignored; see the package tests, which pin this
// behavior.
func Transitivity() Rule { return transitivity{} }

type transitivity struct{}

func (transitivity) Name() string { return "transitivity" }

func (transitivity) Apply(kb []expr.Expr, _ expr.Expr) (expr.Expr, bool) {
	type imp struct{ ant, cons expr.Expr }
	var imps []imp
	for _, f := range kb {
		if ant, cons, ok := implicationParts(f); ok {
			imps = append(imps, imp{ant, cons})
		}
	}
	for _, outer := range imps {
		for _, inner := range imps {
			if outer.cons.Equal(inner.ant) {
				return expr.C(expr.OpImplies, outer.ant, inner.cons), true
			}
		}
	}
	return nil, false
}

// Symmetry flips the first equality fact lhs ~ rhs into rhs ~ lhs. The
// probe is ignored, like Transitivity.
func Symmetry() Rule { return symmetry{} }

type symmetry struct{}

func (symmetry) Name() string { return "symmetry" }

func (symmetry) Apply(kb []expr.Expr, _ expr.Expr) (expr.Expr, bool) {
	for _, f := range kb {
		if lhs, rhs, ok := equalityParts(f); ok {
			return expr.C(expr.OpEquals, rhs, lhs), true
		}
	}
	return nil, false
}

// Substitution applies each equality fact lhs ~ rhs to the probe in fact
// order and returns the first rewrite that changes it.
func Substitution() Rule { return substitution{} }

type substitution struct{}

func (substitution) Name() string { return "substitution" }

func (substitution) Apply(kb []expr.Expr, probe expr.Expr) (expr.Expr, bool) {
	for _, f := range kb {
		lhs, rhs, ok := equalityParts(f)
		if !ok {
			continue
		}
		candidate := ast.SubstitutePattern(probe, lhs, rhs)
		if !candidate.Equal(probe) {
			return candidate, true
		}
	}
	return nil, false
}

// Func wraps a user-supplied apply function as a rule. The engine
// recovers panics out of fn and maps them to "no result", so a faulty
// extension cannot abort a reasoning pass.
func Func(name string, fn func(kb []expr.Expr, probe expr.Expr) (expr.Expr, bool)) Rule {
	return funcRule{name: name, fn: fn}
}

type funcRule struct {
	name string
	fn   func(kb []expr.Expr, probe expr.Expr) (expr.Expr, bool)
}

func (r funcRule) Name() string { return r.name }

func (r funcRule) Apply(kb []expr.Expr, probe expr.Expr) (expr.Expr, bool) {
	return r.fn(kb, probe)
}

func implicationParts(f expr.Expr) (ant, cons expr.Expr, ok bool) {
	c, isCompound := f.(*expr.Compound)
	if !isCompound || c.Op() != expr.OpImplies || c.Arity() != 2 {
		return nil, nil, false
	}
	return c.Arg(0), c.Arg(1), true
}

func equalityParts(f expr.Expr) (lhs, rhs expr.Expr, ok bool) {
	c, isCompound := f.(*expr.Compound)
	if !isCompound || c.Op() != expr.OpEquals || c.Arity() != 2 {
		return nil, nil, false
	}
	return c.Arg(0), c.Arg(1), true
}
