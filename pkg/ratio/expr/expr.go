// Package expr provides the immutable expression trees the reasoning
// engine operates on. A tree node is either an Atom (a named leaf) or a
// Compound (an operator applied to ordered children). Nodes are compared
// by structure only; no metadata participates in equality.
package expr

import (
	"strconv"
	"strings"
)

// Operator names used by the canonical rules and the optimizer.
const (
	OpImplies  = "implies"
	OpEquals   = "equals"
	OpAdd      = "add"
	OpSubtract = "subtract"
	OpMultiply = "multiply"
	OpDivide   = "divide"
	OpPower    = "power"
	OpExp      = "exp"
	OpLog      = "log"
	OpSin      = "sin"
	OpCos      = "cos"
	OpNeg      = "neg"
)

// Expr is an immutable expression-tree node.
type Expr interface {
	// Equal reports structural equality: same node kind, same
	// name/operator, and pairwise-equal children.
	Equal(other Expr) bool
	String() string
	node()
}

// Atom is a leaf node identified by name. Numeric names ("0", "3.5")
// denote constants; every other name denotes a free variable.
type Atom struct {
	name string
}

// A constructs an atom.
func A(name string) *Atom { return &Atom{name: name} }

func (a *Atom) Name() string   { return a.name }
func (a *Atom) String() string { return a.name }
func (a *Atom) node()          {}

func (a *Atom) Equal(other Expr) bool {
	o, ok := other.(*Atom)
	return ok && a.name == o.name
}

// IsNumeric reports whether the atom denotes a numeric constant.
func (a *Atom) IsNumeric() bool {
	_, err := strconv.ParseFloat(a.name, 64)
	return err == nil
}

// Compound is an operator applied to an ordered child sequence.
type Compound struct {
	op   string
	args []Expr
}

// C constructs a compound node. The child slice is copied so later
// mutation of the caller's slice cannot alter the tree.
func C(op string, args ...Expr) *Compound {
	kids := make([]Expr, len(args))
	copy(kids, args)
	return &Compound{op: op, args: kids}
}

func (c *Compound) Op() string { return c.op }

// Args returns a copy of the ordered children.
func (c *Compound) Args() []Expr {
	kids := make([]Expr, len(c.args))
	copy(kids, c.args)
	return kids
}

// Arity returns the number of children.
func (c *Compound) Arity() int { return len(c.args) }

// Arg returns the i-th child.
func (c *Compound) Arg(i int) Expr { return c.args[i] }

func (c *Compound) node() {}

func (c *Compound) Equal(other Expr) bool {
	o, ok := other.(*Compound)
	if !ok || c.op != o.op || len(c.args) != len(o.args) {
		return false
	}
	for i := range c.args {
		if !c.args[i].Equal(o.args[i]) {
			return false
		}
	}
	return true
}

func (c *Compound) String() string {
	var b strings.Builder
	b.WriteString(c.op)
	b.WriteByte('(')
	for i, a := range c.args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

// IsCompound reports whether e is a compound node.
func IsCompound(e Expr) bool {
	_, ok := e.(*Compound)
	return ok
}

// Variables returns the free variables of e: every non-numeric atom, in
// first-occurrence order, de-duplicated by name.
func Variables(e Expr) []*Atom {
	var out []*Atom
	seen := map[string]bool{}
	var walk func(Expr)
	walk = func(n Expr) {
		switch v := n.(type) {
		case *Atom:
			if !v.IsNumeric() && !seen[v.name] {
				seen[v.name] = true
				out = append(out, v)
			}
		case *Compound:
			for _, a := range v.args {
				walk(a)
			}
		}
	}
	walk(e)
	return out
}
