// Package store defines persistence for the fact ledger. The reasoning
// engine itself is purely in-memory; a Store lets callers checkpoint a
// system's facts and restore them later. Insertion order is preserved
// across a save/load cycle because rule scans are order sensitive.
package store

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Fact is a persisted ledger entry. Expr holds the prefix rendering of
// the expression tree.
type Fact struct {
	ID      string
	Expr    string
	Source  string
	AddedAt time.Time
}

// Store persists facts in insertion order.
type Store interface {
	SaveFact(ctx context.Context, f Fact) error
	ListFacts(ctx context.Context) ([]Fact, error)
	Close() error
}

var entropy = ulid.Monotonic(rand.Reader, 0)

// NewID returns a fresh ULID for a fact record.
func NewID() string {
	return ulid.MustNew(ulid.Now(), entropy).String()
}
