package ast

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/symbolica/ratio/pkg/ratio/expr"
)

// maxIterations bounds the fixed-point driver. Rewrite rule sets are not
// guaranteed to converge; this cap is the sole termination guard.
const maxIterations = 100

// RewriteRule is a named tree transformation. Returning the input (or a
// structurally equal tree, or nil) means "no change".
type RewriteRule struct {
	name string
	fn   func(expr.Expr) expr.Expr
}

// NewRewriteRule wraps fn as a rewrite rule.
func NewRewriteRule(name string, fn func(expr.Expr) expr.Expr) RewriteRule {
	return RewriteRule{name: name, fn: fn}
}

func (r RewriteRule) Name() string { return r.name }

// Transform rewrites node to a fixed point. Rules are scanned in order;
// the first rule whose output differs from the current tree is applied
// and the scan restarts from the first rule. A rule that panics is
// treated as "no change" for that attempt. Transform stops when a full
// pass produces no change or after 100 iterations, whichever comes
// first, and returns the final tree.
//
// An optional zap logger records swallowed rule faults; by default they
// are discarded.
func Transform(node expr.Expr, rules []RewriteRule, log ...*zap.Logger) expr.Expr {
	logger := zap.NewNop()
	if len(log) > 0 && log[0] != nil {
		logger = log[0]
	}
	cur := node
	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for _, r := range rules {
			next := applyRewrite(r, cur, logger)
			if !next.Equal(cur) {
				cur = next
				changed = true
				break
			}
		}
		if !changed {
			break
		}
	}
	return cur
}

func applyRewrite(r RewriteRule, node expr.Expr, logger *zap.Logger) (out expr.Expr) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Debug("rewrite rule faulted",
				zap.String("rule", r.name),
				zap.Any("panic", rec))
			out = node
		}
	}()
	out = r.fn(node)
	if out == nil {
		out = node
	}
	return out
}

// OptimizeRules returns the built-in simplification rules: drop zero
// operands from a top-level addition, drop one operands from a top-level
// multiplication, and cancel a double unary negation. The first two are
// whole-node rewrites; they do not recurse into subtrees on their own,
// the fixed-point driver reaches nested nodes through repeated
// application only when a rule rebuilds them to the top.
func OptimizeRules() []RewriteRule {
	return []RewriteRule{
		NewRewriteRule("drop-zero-addends", dropIdentity(expr.OpAdd, "0")),
		NewRewriteRule("drop-one-factors", dropIdentity(expr.OpMultiply, "1")),
		NewRewriteRule("cancel-double-negation", cancelDoubleNegation),
	}
}

// Optimize applies the built-in rules to a fixed point.
func Optimize(node expr.Expr, log ...*zap.Logger) expr.Expr {
	return Transform(node, OptimizeRules(), log...)
}

// dropIdentity removes operands equal to the identity constant from a
// top-level application of op. All operands removed collapses to the
// identity itself; one survivor collapses to that operand.
func dropIdentity(op, identity string) func(expr.Expr) expr.Expr {
	idValue, _ := strconv.ParseFloat(identity, 64)
	return func(e expr.Expr) expr.Expr {
		c, ok := e.(*expr.Compound)
		if !ok || c.Op() != op {
			return e
		}
		args := c.Args()
		keep := args[:0]
		for _, a := range args {
			if v, numeric := atomValue(a); numeric && v == idValue {
				continue
			}
			keep = append(keep, a)
		}
		if len(keep) == c.Arity() {
			return e
		}
		switch len(keep) {
		case 0:
			return expr.A(identity)
		case 1:
			return keep[0]
		default:
			return expr.C(op, keep...)
		}
	}
}

func cancelDoubleNegation(e expr.Expr) expr.Expr {
	outer, ok := e.(*expr.Compound)
	if !ok || outer.Op() != expr.OpNeg || outer.Arity() != 1 {
		return e
	}
	inner, ok := outer.Arg(0).(*expr.Compound)
	if !ok || inner.Op() != expr.OpNeg || inner.Arity() != 1 {
		return e
	}
	return inner.Arg(0)
}
