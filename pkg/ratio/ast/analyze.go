package ast

import (
	"github.com/symbolica/ratio/pkg/ratio/expr"
)

// Symmetry records a pair of top-level operand positions (i < j) whose
// pairwise similarity exceeds the symmetry threshold.
type Symmetry struct {
	I     int
	J     int
	Score float64
}

// symmetryThreshold gates which operand pairs count as symmetric.
const symmetryThreshold = 0.8

// Report is the combined structural analysis of a tree.
type Report struct {
	Depth      int
	Complexity int
	Patterns   []expr.Expr
	Variables  []string
	Operators  []string
	Symmetries []Symmetry
}

// Analyze computes depth, complexity, the pattern set, the free
// variables, the de-duplicated operators occurring anywhere in the tree,
// and the top-level symmetries. Symmetry detection is restricted to the
// root's operand list and only when the root operator is commutative
// (add or multiply); nested symmetries are not inspected.
func Analyze(e expr.Expr) Report {
	rep := Report{
		Depth:      Depth(e),
		Complexity: Complexity(e),
		Patterns:   ExtractPatterns(e),
	}
	for _, v := range expr.Variables(e) {
		rep.Variables = append(rep.Variables, v.Name())
	}
	seen := map[string]bool{}
	for _, n := range Search(e, expr.IsCompound) {
		op := n.(*expr.Compound).Op()
		if !seen[op] {
			seen[op] = true
			rep.Operators = append(rep.Operators, op)
		}
	}
	if root, ok := e.(*expr.Compound); ok && isCommutative(root.Op()) {
		args := root.Args()
		for i := 0; i < len(args); i++ {
			for j := i + 1; j < len(args); j++ {
				if s := Similarity(args[i], args[j]); s > symmetryThreshold {
					rep.Symmetries = append(rep.Symmetries, Symmetry{I: i, J: j, Score: s})
				}
			}
		}
	}
	return rep
}
