package bridge

import (
	"testing"

	"github.com/symbolica/ratio/pkg/ratio"
	"github.com/symbolica/ratio/pkg/ratio/expr"
)

type fakeModel struct {
	equations  []expr.Expr
	unknowns   []expr.Expr
	parameters []expr.Expr
}

func (m fakeModel) Equations() []expr.Expr  { return m.equations }
func (m fakeModel) Unknowns() []expr.Expr   { return m.unknowns }
func (m fakeModel) Parameters() []expr.Expr { return m.parameters }

func TestImport(t *testing.T) {
	sys, err := ratio.New(ratio.Options{Name: "model"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	m := fakeModel{
		equations:  []expr.Expr{expr.MustParse("equals(add(x, y), z)")},
		unknowns:   []expr.Expr{expr.A("x"), expr.A("y")},
		parameters: []expr.Expr{expr.A("g")},
	}

	n := Import(sys, m)
	if n != 4 {
		t.Errorf("Expected 4 facts imported, got %d", n)
	}
	facts := sys.Facts()
	if len(facts) != 4 {
		t.Fatalf("Expected 4 facts in the ledger, got %d", len(facts))
	}
	// Equations first, then unknowns, then parameters.
	if !facts[0].Equal(m.equations[0]) || !facts[3].Equal(expr.A("g")) {
		t.Errorf("Import order should be equations, unknowns, parameters: %v", facts)
	}
	if got := sys.Graph().FactsMentioning("x"); len(got) != 2 {
		t.Errorf("x should be indexed by the equation and the unknown, got %d", len(got))
	}
}

func TestImportEmptyModel(t *testing.T) {
	sys, _ := ratio.New(ratio.Options{Name: "empty"})
	if n := Import(sys, fakeModel{}); n != 0 {
		t.Errorf("Expected 0 facts, got %d", n)
	}
}
