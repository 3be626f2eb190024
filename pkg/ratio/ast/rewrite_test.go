package ast

import (
	"testing"

	"github.com/symbolica/ratio/pkg/ratio/expr"
)

func TestOptimizeDropZeroAddend(t *testing.T) {
	got := Optimize(expr.MustParse("add(x, 0)"))
	if !got.Equal(expr.A("x")) {
		t.Errorf("add(x, 0) should optimize to x, got %s", got)
	}
}

func TestOptimizeDropAllZeroAddends(t *testing.T) {
	got := Optimize(expr.MustParse("add(0, 0)"))
	if !got.Equal(expr.A("0")) {
		t.Errorf("add(0, 0) should collapse to 0, got %s", got)
	}
}

func TestOptimizeKeepsMultipleSurvivors(t *testing.T) {
	got := Optimize(expr.MustParse("add(x, 0, y)"))
	if !got.Equal(expr.MustParse("add(x, y)")) {
		t.Errorf("Expected add(x, y), got %s", got)
	}
}

func TestOptimizeDropOneFactor(t *testing.T) {
	got := Optimize(expr.MustParse("multiply(1, x)"))
	if !got.Equal(expr.A("x")) {
		t.Errorf("multiply(1, x) should optimize to x, got %s", got)
	}
}

func TestOptimizeDoubleNegation(t *testing.T) {
	got := Optimize(expr.MustParse("neg(neg(x))"))
	if !got.Equal(expr.A("x")) {
		t.Errorf("neg(neg(x)) should optimize to x, got %s", got)
	}

	got = Optimize(expr.MustParse("neg(neg(neg(x)))"))
	if !got.Equal(expr.MustParse("neg(x)")) {
		t.Errorf("Triple negation should leave one neg, got %s", got)
	}
}

func TestOptimizeTopLevelOnly(t *testing.T) {
	// The zero-addend rule is a whole-node rewrite; a nested addition
	// is out of its reach.
	got := Optimize(expr.MustParse("multiply(add(x, 0), y)"))
	if !got.Equal(expr.MustParse("multiply(add(x, 0), y)")) {
		t.Errorf("Nested addition should be untouched, got %s", got)
	}
}

func TestOptimizeUnchangedInput(t *testing.T) {
	e := expr.MustParse("add(x, y)")
	if got := Optimize(e); !got.Equal(e) {
		t.Errorf("Expected unchanged tree, got %s", got)
	}
}

func TestTransformFirstMatchingRuleRestartsScan(t *testing.T) {
	// Rule order matters: after any change the scan restarts from the
	// first rule, so renames chain a -> b -> c.
	rename := func(from, to string) RewriteRule {
		return NewRewriteRule(from+"-to-"+to, func(e expr.Expr) expr.Expr {
			if a, ok := e.(*expr.Atom); ok && a.Name() == from {
				return expr.A(to)
			}
			return e
		})
	}
	rs := []RewriteRule{rename("b", "c"), rename("a", "b")}

	got := Transform(expr.A("a"), rs)
	if !got.Equal(expr.A("c")) {
		t.Errorf("Expected c, got %s", got)
	}
}

func TestTransformIterationCap(t *testing.T) {
	wrap := NewRewriteRule("wrap", func(e expr.Expr) expr.Expr {
		return expr.C(expr.OpNeg, e)
	})

	got := Transform(expr.A("x"), []RewriteRule{wrap})
	// A non-converging rule is cut off at 100 iterations.
	if d := Depth(got); d != 101 {
		t.Errorf("Expected depth 101 after the iteration cap, got %d", d)
	}
}

func TestTransformFaultingRuleSkipped(t *testing.T) {
	boom := NewRewriteRule("boom", func(expr.Expr) expr.Expr {
		panic("unexpected structure")
	})
	rs := append([]RewriteRule{boom}, OptimizeRules()...)

	got := Transform(expr.MustParse("add(x, 0)"), rs)
	if !got.Equal(expr.A("x")) {
		t.Errorf("A faulting rewrite rule should not abort the pass, got %s", got)
	}
}

func TestTransformNilResultIsNoChange(t *testing.T) {
	lazy := NewRewriteRule("lazy", func(expr.Expr) expr.Expr { return nil })

	e := expr.MustParse("add(x, y)")
	if got := Transform(e, []RewriteRule{lazy}); !got.Equal(e) {
		t.Errorf("Nil rewrite result should mean no change, got %s", got)
	}
}

func TestTransformNoRules(t *testing.T) {
	e := expr.MustParse("add(x, y)")
	if got := Transform(e, nil); !got.Equal(e) {
		t.Errorf("Expected unchanged tree, got %s", got)
	}
}
