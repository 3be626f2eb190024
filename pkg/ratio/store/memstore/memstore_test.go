package memstore

import (
	"context"
	"testing"

	"github.com/symbolica/ratio/pkg/ratio/store"
)

func TestSaveAndList(t *testing.T) {
	ctx := context.Background()
	m := New()

	for _, src := range []string{"implies(p, q)", "equals(x, y)", "p"} {
		if err := m.SaveFact(ctx, store.Fact{Expr: src, Source: "test"}); err != nil {
			t.Fatalf("SaveFact failed: %v", err)
		}
	}

	got, err := m.ListFacts(ctx)
	if err != nil {
		t.Fatalf("ListFacts failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 facts, got %d", len(got))
	}
	if got[0].Expr != "implies(p, q)" || got[2].Expr != "p" {
		t.Error("Insertion order should be preserved")
	}
	for i, f := range got {
		if f.ID == "" {
			t.Errorf("Fact %d should have a generated ID", i)
		}
		if f.AddedAt.IsZero() {
			t.Errorf("Fact %d should have a timestamp", i)
		}
	}
}

func TestListCopies(t *testing.T) {
	ctx := context.Background()
	m := New()
	if err := m.SaveFact(ctx, store.Fact{Expr: "p"}); err != nil {
		t.Fatal(err)
	}

	first, _ := m.ListFacts(ctx)
	first[0].Expr = "mutated"

	second, _ := m.ListFacts(ctx)
	if second[0].Expr != "p" {
		t.Error("ListFacts should return a copy")
	}
}
