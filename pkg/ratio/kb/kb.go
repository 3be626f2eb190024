// Package kb holds the fact ledger and the variable index built over it.
//
// The knowledge base is append-only: facts are never removed, reordered,
// or de-duplicated, and rule scans depend on insertion order. The graph
// maps each free variable to the facts mentioning it, in the same order.
package kb

import (
	"github.com/symbolica/ratio/pkg/ratio/expr"
)

// KnowledgeBase is an ordered, append-only ledger of facts.
type KnowledgeBase struct {
	facts []expr.Expr
}

// New creates an empty knowledge base.
func New() *KnowledgeBase {
	return &KnowledgeBase{}
}

// Add appends a fact. Duplicates are permitted.
func (k *KnowledgeBase) Add(fact expr.Expr) {
	k.facts = append(k.facts, fact)
}

// Facts returns the ledger in insertion order. The slice is shared with
// the knowledge base; callers must not modify it.
func (k *KnowledgeBase) Facts() []expr.Expr {
	return k.facts
}

// Len returns the number of stored facts.
func (k *KnowledgeBase) Len() int {
	return len(k.facts)
}

// Contains reports whether a structurally equal fact is already stored.
func (k *KnowledgeBase) Contains(fact expr.Expr) bool {
	for _, f := range k.facts {
		if f.Equal(fact) {
			return true
		}
	}
	return false
}

// Graph indexes facts by the free variables occurring in them. Entries
// grow monotonically; a variable is never removed.
type Graph struct {
	byVar map[string][]expr.Expr
	order []string
}

// NewGraph creates an empty reasoning graph.
func NewGraph() *Graph {
	return &Graph{byVar: make(map[string][]expr.Expr)}
}

// Record appends fact to the entry of each free variable it mentions,
// creating entries as needed. Variables are detected at insertion time;
// a fact added twice is indexed twice.
func (g *Graph) Record(fact expr.Expr) {
	for _, v := range expr.Variables(fact) {
		name := v.Name()
		if _, ok := g.byVar[name]; !ok {
			g.order = append(g.order, name)
		}
		g.byVar[name] = append(g.byVar[name], fact)
	}
}

// FactsMentioning returns the facts indexed under the named variable,
// in insertion order. The slice is shared; callers must not modify it.
func (g *Graph) FactsMentioning(name string) []expr.Expr {
	return g.byVar[name]
}

// Variables returns the indexed variable names in first-seen order.
func (g *Graph) Variables() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}
