// Package bridge imports an external scientific model into a reasoning
// system. The bridge is deliberately thin: each equation, unknown, and
// parameter becomes one fact, in that order.
package bridge

import (
	"github.com/symbolica/ratio/pkg/ratio"
	"github.com/symbolica/ratio/pkg/ratio/expr"
)

// Model is the consumed surface of an external scientific-model
// representation.
type Model interface {
	Equations() []expr.Expr
	Unknowns() []expr.Expr
	Parameters() []expr.Expr
}

// Import adds every equation, unknown, and parameter of the model to
// the system as a fact and returns the number of facts added.
func Import(sys *ratio.System, m Model) int {
	n := 0
	for _, group := range [][]expr.Expr{m.Equations(), m.Unknowns(), m.Parameters()} {
		for _, e := range group {
			sys.AddFact(e)
			n++
		}
	}
	return n
}
