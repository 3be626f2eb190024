// Package ast implements structural analysis and rewriting of expression
// trees: depth and complexity metrics, positional similarity, pattern
// extraction, pre-order search, fuzzy pattern substitution, and a
// fixed-point rewrite driver with a built-in optimizer.
//
// Every function is pure structural recursion over immutable input, so
// independent calls are safe to run concurrently. Inputs must be finite
// and acyclic; no cycle detection is performed.
package ast

import (
	"strconv"

	"github.com/symbolica/ratio/pkg/ratio/expr"
)

// Depth returns 1 for an atom, otherwise 1 plus the maximum child depth.
func Depth(e expr.Expr) int {
	c, ok := e.(*expr.Compound)
	if !ok {
		return 1
	}
	max := 0
	for _, a := range c.Args() {
		if d := Depth(a); d > max {
			max = d
		}
	}
	return 1 + max
}

// Complexity scores a tree: 1 for an atom, otherwise 1 plus the children's
// complexity plus the operator weight. The weight table is a behavioral
// contract: 1 for arithmetic, 2 for power/exp/log/sin/cos, 3 otherwise.
func Complexity(e expr.Expr) int {
	c, ok := e.(*expr.Compound)
	if !ok {
		return 1
	}
	total := 1 + operatorWeight(c.Op())
	for _, a := range c.Args() {
		total += Complexity(a)
	}
	return total
}

func operatorWeight(op string) int {
	switch op {
	case expr.OpAdd, expr.OpSubtract, expr.OpMultiply, expr.OpDivide:
		return 1
	case expr.OpPower, expr.OpExp, expr.OpLog, expr.OpSin, expr.OpCos:
		return 2
	default:
		return 3
	}
}

// Similarity scores structural resemblance in [0, 1]. Two atoms compare
// by equality; an atom never resembles a compound; compounds with
// different operators or arities score 0; otherwise the score is the
// arithmetic mean of the children's similarity in positional order.
// Positional comparison is deliberate: isomorphic trees with permuted
// operands score below 1.
func Similarity(a, b expr.Expr) float64 {
	ca, aOK := a.(*expr.Compound)
	cb, bOK := b.(*expr.Compound)
	if !aOK && !bOK {
		if a.Equal(b) {
			return 1.0
		}
		return 0.0
	}
	if aOK != bOK {
		return 0.0
	}
	if ca.Op() != cb.Op() || ca.Arity() != cb.Arity() {
		return 0.0
	}
	if ca.Arity() == 0 {
		return 1.0
	}
	sum := 0.0
	as, bs := ca.Args(), cb.Args()
	for i := range as {
		sum += Similarity(as[i], bs[i])
	}
	return sum / float64(len(as))
}

// ExtractPatterns returns the de-duplicated, order-preserving patterns of
// a tree: the tree itself, the patterns of each child, and, for add or
// multiply nodes with more than two operands, each adjacent operand pair
// recombined as a binary application of the same operator. Only adjacent
// pairs are produced; operands [a, b, c] yield op(a,b) and op(b,c) but
// not op(a,c).
func ExtractPatterns(e expr.Expr) []expr.Expr {
	var out []expr.Expr
	add := func(p expr.Expr) {
		for _, q := range out {
			if q.Equal(p) {
				return
			}
		}
		out = append(out, p)
	}
	var visit func(expr.Expr)
	visit = func(n expr.Expr) {
		add(n)
		c, ok := n.(*expr.Compound)
		if !ok {
			return
		}
		args := c.Args()
		for _, a := range args {
			visit(a)
		}
		if isCommutative(c.Op()) && len(args) > 2 {
			for i := 0; i+1 < len(args); i++ {
				add(expr.C(c.Op(), args[i], args[i+1]))
			}
		}
	}
	visit(e)
	return out
}

func isCommutative(op string) bool {
	return op == expr.OpAdd || op == expr.OpMultiply
}

// Search returns, in pre-order (node before children, children left to
// right), every node of the tree satisfying pred. The root is included.
func Search(e expr.Expr, pred func(expr.Expr) bool) []expr.Expr {
	var out []expr.Expr
	var walk func(expr.Expr)
	walk = func(n expr.Expr) {
		if pred(n) {
			out = append(out, n)
		}
		if c, ok := n.(*expr.Compound); ok {
			for _, a := range c.Args() {
				walk(a)
			}
		}
	}
	walk(e)
	return out
}

// SubstitutePattern replaces occurrences of pattern with replacement.
// The match gate is fuzzy: a node whose similarity to the pattern
// exceeds 0.99 is replaced wholesale, which for all but very wide trees
// coincides with structural equality. Non-matching compounds are rebuilt
// with substituted children; non-matching atoms pass through.
func SubstitutePattern(node, pattern, replacement expr.Expr) expr.Expr {
	if Similarity(node, pattern) > 0.99 {
		return replacement
	}
	c, ok := node.(*expr.Compound)
	if !ok {
		return node
	}
	args := c.Args()
	for i := range args {
		args[i] = SubstitutePattern(args[i], pattern, replacement)
	}
	return expr.C(c.Op(), args...)
}

func atomValue(e expr.Expr) (float64, bool) {
	a, ok := e.(*expr.Atom)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(a.Name(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
