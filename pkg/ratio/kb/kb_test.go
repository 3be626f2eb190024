package kb

import (
	"testing"

	"github.com/symbolica/ratio/pkg/ratio/expr"
)

func TestAddIsAppendOnly(t *testing.T) {
	k := New()
	f := expr.MustParse("equals(x, y)")

	k.Add(f)
	k.Add(f)
	k.Add(expr.MustParse("implies(p, q)"))

	if k.Len() != 3 {
		t.Errorf("Expected 3 facts (duplicates permitted), got %d", k.Len())
	}
	if !k.Facts()[0].Equal(f) || !k.Facts()[1].Equal(f) {
		t.Error("Facts should be stored in insertion order")
	}
}

func TestContains(t *testing.T) {
	k := New()
	k.Add(expr.MustParse("equals(x, y)"))

	if !k.Contains(expr.MustParse("equals(x, y)")) {
		t.Error("Contains should match structurally equal facts")
	}
	if k.Contains(expr.MustParse("equals(y, x)")) {
		t.Error("Contains should not match a different structure")
	}
}

func TestGraphRecord(t *testing.T) {
	g := NewGraph()
	f1 := expr.MustParse("equals(x, y)")
	f2 := expr.MustParse("implies(y, z)")

	g.Record(f1)
	g.Record(f2)

	if got := g.Variables(); len(got) != 3 {
		t.Fatalf("Expected variables [x y z], got %v", got)
	}
	if facts := g.FactsMentioning("y"); len(facts) != 2 {
		t.Errorf("Expected 2 facts mentioning y, got %d", len(facts))
	}
	if facts := g.FactsMentioning("x"); len(facts) != 1 || !facts[0].Equal(f1) {
		t.Errorf("Expected only the equality to mention x")
	}
	if facts := g.FactsMentioning("unseen"); facts != nil {
		t.Errorf("Unknown variable should have no entry, got %v", facts)
	}
}

func TestGraphDuplicateFactIndexedTwice(t *testing.T) {
	g := NewGraph()
	f := expr.MustParse("equals(x, y)")

	g.Record(f)
	g.Record(f)

	if facts := g.FactsMentioning("x"); len(facts) != 2 {
		t.Errorf("A fact added twice should be indexed twice, got %d entries", len(facts))
	}
}

func TestGraphSkipsNumericAtoms(t *testing.T) {
	g := NewGraph()
	g.Record(expr.MustParse("equals(add(x, 0), x)"))

	if got := g.Variables(); len(got) != 1 || got[0] != "x" {
		t.Errorf("Expected only x indexed, got %v", got)
	}
}
