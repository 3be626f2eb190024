package ratio

import (
	"context"
	"fmt"
	"time"

	"github.com/symbolica/ratio/pkg/ratio/expr"
	"github.com/symbolica/ratio/pkg/ratio/store"
)

// Restore builds a System from persisted facts. The stored ledger is
// parsed back into expression trees and prepended, in stored order, to
// any facts already carried by opts. An unparsable record is a hard
// failure; the store is assumed to hold what Checkpoint wrote.
func Restore(ctx context.Context, st store.Store, opts Options) (*System, error) {
	recs, err := st.ListFacts(ctx)
	if err != nil {
		return nil, err
	}
	facts := make([]expr.Expr, 0, len(recs)+len(opts.Facts))
	for _, rec := range recs {
		e, err := expr.Parse(rec.Expr)
		if err != nil {
			return nil, fmt.Errorf("restore fact %s: %w", rec.ID, err)
		}
		facts = append(facts, e)
	}
	opts.Facts = append(facts, opts.Facts...)
	return New(opts)
}

// Checkpoint writes the current fact ledger to the store in insertion
// order. It appends; checkpointing twice into the same store doubles the
// ledger, so callers typically checkpoint into a fresh store.
func (s *System) Checkpoint(ctx context.Context, st store.Store) error {
	now := time.Now().UTC()
	for _, f := range s.kb.Facts() {
		rec := store.Fact{
			ID:      store.NewID(),
			Expr:    f.String(),
			Source:  s.name,
			AddedAt: now,
		}
		if err := st.SaveFact(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
