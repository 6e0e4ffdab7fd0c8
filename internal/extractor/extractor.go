package extractor

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// MaxTitleRunes bounds Article titles.
	MaxTitleRunes = 200
	// MaxDescriptionRunes bounds Article descriptions.
	MaxDescriptionRunes = 500
)

// RawItem is one feed entry before scoring. Title and Description are
// already cleaned, trimmed and truncated.
type RawItem struct {
	Title       string
	Description string
	Link        string
	Published   string
}

// Extractor turns a fetched feed body into items, preserving feed order.
// Implementations drop malformed entries instead of failing the whole feed.
type Extractor interface {
	Name() string
	Extract(body string) ([]RawItem, error)
}

// Registry keeps a mapping from extractor names to their implementations.
type Registry struct {
	extractors map[string]Extractor
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{extractors: map[string]Extractor{}}
}

// Register adds or replaces an extractor implementation.
func (r *Registry) Register(ex Extractor) {
	if r.extractors == nil {
		r.extractors = map[string]Extractor{}
	}
	r.extractors[ex.Name()] = ex
}

// Resolve returns an extractor by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Extractor, error) {
	if ex, ok := r.extractors[strings.ToLower(name)]; ok {
		return ex, nil
	}
	return nil, fmt.Errorf("extractor %s is not registered (have %s)", name, strings.Join(r.Names(), ", "))
}

// Names lists registered extractor names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.extractors))
	for name := range r.extractors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// Accept applies the shared acceptance rule: both title and description
// must be non-empty after cleaning.
func Accept(item RawItem) bool {
	return item.Title != "" && item.Description != ""
}
