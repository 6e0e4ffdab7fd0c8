package parser

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"PodcastDaily/internal/domain"
	"PodcastDaily/internal/extractor"
	"PodcastDaily/internal/ports"
)

// FeedSource implements ArticleSource by fetching every feed concurrently
// and running the configured extractor over each body.
type FeedSource struct {
	fetcher   ports.Fetcher
	extractor extractor.Extractor
	logger    *slog.Logger
}

var _ ports.ArticleSource = (*FeedSource)(nil)

// NewFeedSource wires a fetcher with an extraction strategy.
func NewFeedSource(f ports.Fetcher, ex extractor.Extractor, log *slog.Logger) *FeedSource {
	return &FeedSource{
		fetcher:   f,
		extractor: ex,
		logger:    log,
	}
}

// Collect returns articles from all feeds, concatenated in feed order.
// A failing feed is logged and skipped.
func (s *FeedSource) Collect(ctx context.Context, feeds []string) []domain.Article {
	s.debug("collect feeds", "feeds", len(feeds), "extractor", s.extractor.Name())

	perFeed := make([][]domain.Article, len(feeds))
	var wg sync.WaitGroup
	for i, feedURL := range feeds {
		wg.Add(1)
		go func(i int, feedURL string) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					s.warn("feed processing panicked", "url", feedURL, "panic", fmt.Sprint(r))
					perFeed[i] = nil
				}
			}()
			perFeed[i] = s.collectFeed(ctx, feedURL)
		}(i, feedURL)
	}
	wg.Wait()

	var aggregated []domain.Article
	for _, articles := range perFeed {
		aggregated = append(aggregated, articles...)
	}

	s.debug("feed source done", "total_articles", len(aggregated))
	return aggregated
}

func (s *FeedSource) collectFeed(ctx context.Context, feedURL string) []domain.Article {
	body, err := s.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		s.warn("feed unavailable", "url", feedURL, "error", err)
		return nil
	}
	s.debug("feed fetched", "url", feedURL, "bytes", len(body))

	items, err := s.extractor.Extract(body)
	if err != nil {
		s.warn("feed unreadable", "url", feedURL, "error", err)
		return nil
	}

	host := sourceHost(feedURL)
	articles := make([]domain.Article, 0, len(items))
	for _, item := range items {
		articles = append(articles, domain.Article{
			Title:       item.Title,
			Description: item.Description,
			Link:        item.Link,
			PublishedAt: item.Published,
			SourceHost:  host,
		})
	}

	s.debug("feed produced articles", "url", feedURL, "count", len(articles))
	return articles
}

func sourceHost(feedURL string) string {
	parsed, err := url.Parse(feedURL)
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}

func (s *FeedSource) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *FeedSource) warn(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
