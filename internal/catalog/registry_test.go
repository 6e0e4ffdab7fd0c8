package catalog

import (
	"reflect"
	"testing"

	"PodcastDaily/internal/config"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(config.Default().Categories)

	wantCats := []string{"ai-tech", "finance-business", "science", "health", "politics"}
	if got := reg.Categories(); !reflect.DeepEqual(got, wantCats) {
		t.Fatalf("unexpected categories: %v", got)
	}
	if got := reg.Languages(); !reflect.DeepEqual(got, []string{"en", "de"}) {
		t.Fatalf("unexpected languages: %v", got)
	}
	if got := len(reg.Pairs()); got != 10 {
		t.Fatalf("expected 10 pairs, got %d", got)
	}

	feeds, ok := reg.Sources("ai-tech", "en")
	if !ok || len(feeds) != 3 {
		t.Fatalf("expected 3 ai-tech/en feeds, got %v (ok=%v)", feeds, ok)
	}
	if reg.Has("unknown", "en") || reg.Has("ai-tech", "fr") {
		t.Fatal("unknown pairs must not resolve")
	}
}

func TestRegistryIsImmutable(t *testing.T) {
	t.Parallel()

	reg := NewRegistry([]config.CategoryConfig{
		{Name: "science", Languages: []config.LanguageConfig{{Code: "en", Feeds: []string{"https://a.example/rss"}}}},
	})

	feeds, _ := reg.Sources("science", "en")
	feeds[0] = "mutated"

	again, _ := reg.Sources("science", "en")
	if again[0] != "https://a.example/rss" {
		t.Fatalf("registry leaked internal slice: %v", again)
	}

	cats := reg.Categories()
	cats[0] = "mutated"
	if reg.Categories()[0] != "science" {
		t.Fatal("categories slice leaked")
	}
}

func TestRegistrySkipsEmptyEntries(t *testing.T) {
	t.Parallel()

	reg := NewRegistry([]config.CategoryConfig{
		{Name: "", Languages: []config.LanguageConfig{{Code: "en", Feeds: []string{"x"}}}},
		{Name: "empty", Languages: []config.LanguageConfig{{Code: "en"}}},
		{Name: "health", Languages: []config.LanguageConfig{
			{Code: "de", Feeds: []string{"", "https://b.example/rss"}},
			{Code: "de", Feeds: []string{"https://dup.example/rss"}},
		}},
	})

	if got := reg.Categories(); !reflect.DeepEqual(got, []string{"health"}) {
		t.Fatalf("unexpected categories: %v", got)
	}
	feeds, _ := reg.Sources("health", "de")
	if !reflect.DeepEqual(feeds, []string{"https://b.example/rss"}) {
		t.Fatalf("unexpected feeds: %v", feeds)
	}
}
