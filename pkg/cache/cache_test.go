package cache

import (
	"testing"

	"github.com/Ikhwanand/diary-tui/pkg/entry"
)

func entries(titles ...string) []*entry.Entry {
	out := make([]*entry.Entry, 0, len(titles))
	for i, title := range titles {
		out = append(out, &entry.Entry{ID: int64(i + 1), Title: title})
	}
	return out
}

func TestReplaceAndAll(t *testing.T) {
	c := New()
	gen := c.Begin()
	if !c.Replace(gen, entries("a", "b")) {
		t.Fatal("expected snapshot to apply")
	}
	got := c.All()
	if len(got) != 2 || got[0].Title != "a" || got[1].Title != "b" {
		t.Fatalf("unexpected snapshot %v", got)
	}
}

func TestStaleGenerationDropped(t *testing.T) {
	c := New()
	gen1 := c.Begin()
	gen2 := c.Begin()

	// The second refresh resolves first.
	if !c.Replace(gen2, entries("new")) {
		t.Fatal("latest generation should apply")
	}
	// The first resolves late and must be dropped whole.
	if c.Replace(gen1, entries("old", "stale")) {
		t.Fatal("stale generation should be dropped")
	}

	got := c.All()
	if len(got) != 1 || got[0].Title != "new" {
		t.Fatalf("expected last writer to win, got %v", got)
	}
}

func TestEarlyCompletionOfSupersededRefreshDropped(t *testing.T) {
	c := New()
	gen1 := c.Begin()
	gen2 := c.Begin()

	// The superseded refresh resolves before the latest one.
	if c.Replace(gen1, entries("old")) {
		t.Fatal("superseded refresh must not apply even when it resolves first")
	}
	if c.Len() != 0 {
		t.Fatalf("cache should be untouched, has %d entries", c.Len())
	}
	if !c.Replace(gen2, entries("new")) {
		t.Fatal("latest refresh should still apply")
	}
}

func TestInvalidate(t *testing.T) {
	c := New()
	gen := c.Begin()
	c.Replace(gen, entries("a"))
	c.Invalidate()
	if c.Len() != 0 {
		t.Fatal("expected empty cache after invalidate")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := New()
	gen := c.Begin()
	c.Replace(gen, entries("a", "b"))
	got := c.All()
	got[0] = nil
	if c.All()[0] == nil {
		t.Fatal("All must return a copy of the slice")
	}
}
