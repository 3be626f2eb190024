package expr

import (
	"testing"
)

func TestParseAtom(t *testing.T) {
	e, err := Parse("x")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !e.Equal(A("x")) {
		t.Errorf("Expected atom x, got %s", e)
	}
}

func TestParseNested(t *testing.T) {
	e, err := Parse("implies(p, add(x, 0))")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := C(OpImplies, A("p"), C(OpAdd, A("x"), A("0")))
	if !e.Equal(want) {
		t.Errorf("Expected %s, got %s", want, e)
	}
}

func TestParseWhitespace(t *testing.T) {
	e, err := Parse("  equals( add( x , 0 ) , x )  ")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := C(OpEquals, C(OpAdd, A("x"), A("0")), A("x"))
	if !e.Equal(want) {
		t.Errorf("Expected %s, got %s", want, e)
	}
}

func TestParseRoundTrip(t *testing.T) {
	src := "implies(p, add(x, multiply(y, 2)))"
	e, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if e.String() != src {
		t.Errorf("Round trip mismatch: %q -> %q", src, e.String())
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"",
		"add(x",
		"add(x,)",
		"add(x))",
		"(x)",
		"add(x) y",
	}
	for _, src := range bad {
		if _, err := Parse(src); err == nil {
			t.Errorf("Expected error for %q", src)
		}
	}
}
