package extractor

import (
	"strings"
	"testing"
)

type namedExtractor string

func (n namedExtractor) Name() string                    { return string(n) }
func (namedExtractor) Extract(string) ([]RawItem, error) { return nil, nil }

func TestRegistryResolve(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(namedExtractor("pattern"))
	r.Register(namedExtractor("gofeed"))

	ex, err := r.Resolve("GoFeed")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ex.Name() != "gofeed" {
		t.Fatalf("resolved %q", ex.Name())
	}

	_, err = r.Resolve("xml")
	if err == nil || !strings.Contains(err.Error(), "gofeed, pattern") {
		t.Fatalf("expected error listing registered names, got %v", err)
	}
}

func TestTruncateCountsRunes(t *testing.T) {
	t.Parallel()

	if got := Truncate("Grüße aus Köln", 5); got != "Grüße" {
		t.Fatalf("Truncate = %q", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("Truncate = %q", got)
	}
}

func TestAccept(t *testing.T) {
	t.Parallel()

	if Accept(RawItem{Title: "t"}) {
		t.Fatal("item without description must be rejected")
	}
	if Accept(RawItem{Description: "d"}) {
		t.Fatal("item without title must be rejected")
	}
	if !Accept(RawItem{Title: "t", Description: "d"}) {
		t.Fatal("complete item must be accepted")
	}
}
