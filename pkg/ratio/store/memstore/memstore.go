// Package memstore provides an in-memory store.Store for tests and
// examples.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/symbolica/ratio/pkg/ratio/store"
)

// Memstore keeps fact records in a slice, preserving insertion order.
type Memstore struct {
	mu    sync.Mutex
	facts []store.Fact
}

// New creates an empty in-memory store.
func New() *Memstore {
	return &Memstore{}
}

// SaveFact appends a fact record. An empty ID is filled in.
func (m *Memstore) SaveFact(_ context.Context, f store.Fact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f.ID == "" {
		f.ID = store.NewID()
	}
	if f.AddedAt.IsZero() {
		f.AddedAt = time.Now().UTC()
	}
	m.facts = append(m.facts, f)
	return nil
}

// ListFacts returns all fact records in insertion order.
func (m *Memstore) ListFacts(_ context.Context) ([]store.Fact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]store.Fact, len(m.facts))
	copy(out, m.facts)
	return out, nil
}

// Close is a no-op.
func (m *Memstore) Close() error { return nil }
