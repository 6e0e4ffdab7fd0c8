package catalog

import (
	"strings"

	"github.com/samber/lo"

	"PodcastDaily/internal/config"
)

// Pair identifies one category/language combination.
type Pair struct {
	Category string
	Language string
}

type entry struct {
	language string
	feeds    []string
}

// Registry is the immutable category -> language -> feeds table.
type Registry struct {
	categories []string
	entries    map[string][]entry
}

// NewRegistry freezes config-defined categories. Empty names and languages
// without feeds are skipped; duplicates keep the first occurrence.
func NewRegistry(categories []config.CategoryConfig) *Registry {
	r := &Registry{entries: map[string][]entry{}}

	for _, cat := range categories {
		name := strings.TrimSpace(cat.Name)
		if name == "" {
			continue
		}
		if _, ok := r.entries[name]; ok {
			continue
		}

		var langs []entry
		for _, lang := range cat.Languages {
			code := strings.TrimSpace(lang.Code)
			feeds := lo.Compact(lang.Feeds)
			if code == "" || len(feeds) == 0 {
				continue
			}
			if lo.ContainsBy(langs, func(e entry) bool { return e.language == code }) {
				continue
			}
			langs = append(langs, entry{language: code, feeds: feeds})
		}
		if len(langs) == 0 {
			continue
		}

		r.categories = append(r.categories, name)
		r.entries[name] = langs
	}

	return r
}

// Sources returns a copy of the feed list for the pair.
func (r *Registry) Sources(category, language string) ([]string, bool) {
	for _, e := range r.entries[category] {
		if e.language == language {
			return append([]string(nil), e.feeds...), true
		}
	}
	return nil, false
}

// Has reports whether the pair exists.
func (r *Registry) Has(category, language string) bool {
	_, ok := r.Sources(category, language)
	return ok
}

// Categories lists category keys in configuration order.
func (r *Registry) Categories() []string {
	return append([]string(nil), r.categories...)
}

// Languages is the ordered union of language codes across categories.
func (r *Registry) Languages() []string {
	var all []string
	for _, cat := range r.categories {
		for _, e := range r.entries[cat] {
			all = append(all, e.language)
		}
	}
	return lo.Uniq(all)
}

// Pairs enumerates every configured pair in registry order.
func (r *Registry) Pairs() []Pair {
	var pairs []Pair
	for _, cat := range r.categories {
		for _, e := range r.entries[cat] {
			pairs = append(pairs, Pair{Category: cat, Language: e.language})
		}
	}
	return pairs
}
