package ports

import (
	"context"

	"PodcastDaily/internal/domain"
)

// Fetcher downloads a single feed body.
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string) (string, error)
}

// ArticleSource turns a list of feed URLs into extracted articles.
// Unavailable feeds contribute nothing; Collect itself never fails.
type ArticleSource interface {
	Collect(ctx context.Context, feeds []string) []domain.Article
}

// Scorer assigns a relevance score to an article for a language.
type Scorer interface {
	Score(article domain.Article, language string) int
}

// ScriptRenderer produces the two-host dialogue for ranked articles.
type ScriptRenderer interface {
	Render(articles []domain.Article, category, language string) string
	Hosts(category, language string) domain.Hosts
}

// RandomSource picks uniformly from [0, n). Implementations must accept n > 0.
// Callers sharing one source across goroutines must serialize access;
// script.NewRenderer does this for the source it is given.
type RandomSource interface {
	IntN(n int) int
}
