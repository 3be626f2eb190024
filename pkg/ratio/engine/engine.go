// Package engine drives rule application: single-shot inference over a
// probe and bounded forward chaining to saturation.
//
// Rule evaluation is fault tolerant. A rule that panics is treated
// exactly like a rule that found no derivation; the fault is recorded on
// the engine's logger and the reasoning pass continues. Inapplicability
// is common and must never abort a pass.
package engine

import (
	"go.uber.org/zap"

	"github.com/symbolica/ratio/pkg/ratio/expr"
	"github.com/symbolica/ratio/pkg/ratio/rules"
)

// DefaultMaxRounds bounds forward chaining when the caller does not
// choose a limit.
const DefaultMaxRounds = 3

// Engine applies inference rules to fact sequences.
type Engine struct {
	log *zap.Logger
}

// Options configures an Engine.
type Options struct {
	// Logger records swallowed rule faults at debug level. Nil means
	// faults are discarded silently.
	Logger *zap.Logger
}

// New creates an engine.
func New(opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{log: log}
}

// Infer invokes every rule in registration order against the probe and
// returns the derived facts in rule order. Rules yielding no result
// contribute nothing; duplicate derivations across rules are kept.
func (e *Engine) Infer(kb []expr.Expr, ruleset []rules.Rule, probe expr.Expr) []expr.Expr {
	var out []expr.Expr
	for _, r := range ruleset {
		if derived, ok := e.safeApply(r, kb, probe); ok {
			out = append(out, derived)
		}
	}
	return out
}

// Saturate forward-chains over a working copy of the knowledge base for
// at most maxRounds rounds. Each round snapshots the working set and,
// for every fact in the snapshot in order, invokes every rule with the
// fact in the probe slot (the premise under consideration). A derivation
// is collected when it is structurally absent from both the working set
// and the round's earlier discoveries. Discovery order within a round is
// fact-outer, rule-inner. A round with no discoveries ends chaining
// early; otherwise the discoveries join the working set and the output.
// The returned sequence is grouped by round in ascending order.
func (e *Engine) Saturate(kb []expr.Expr, ruleset []rules.Rule, maxRounds int) []expr.Expr {
	working := make([]expr.Expr, len(kb))
	copy(working, kb)

	var derived []expr.Expr
	for round := 0; round < maxRounds; round++ {
		snapshot := make([]expr.Expr, len(working))
		copy(snapshot, working)

		var fresh []expr.Expr
		for _, fact := range snapshot {
			for _, r := range ruleset {
				result, ok := e.safeApply(r, working, fact)
				if !ok {
					continue
				}
				if containsEqual(working, result) || containsEqual(fresh, result) {
					continue
				}
				fresh = append(fresh, result)
			}
		}
		if len(fresh) == 0 {
			break
		}
		derived = append(derived, fresh...)
		working = append(working, fresh...)
	}
	return derived
}

// safeApply runs a rule, mapping both "inapplicable" and a panic during
// evaluation to the same no-result outcome. The two cases are
// distinguished only on the logger.
func (e *Engine) safeApply(r rules.Rule, kb []expr.Expr, probe expr.Expr) (result expr.Expr, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			e.log.Debug("inference rule faulted",
				zap.String("rule", r.Name()),
				zap.Stringer("probe", probe),
				zap.Any("panic", rec))
			result, ok = nil, false
		}
	}()
	result, ok = r.Apply(kb, probe)
	if ok && result == nil {
		// A rule reporting success without a fact is malformed; treat
		// it as inapplicable.
		ok = false
	}
	return result, ok
}

func containsEqual(facts []expr.Expr, target expr.Expr) bool {
	for _, f := range facts {
		if f.Equal(target) {
			return true
		}
	}
	return false
}
