package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"PodcastDaily/internal/extractor"
)

// FeedExtractor parses RSS/Atom/JSON feeds with gofeed. Unlike
// PatternExtractor it rejects bodies that are not a recognisable feed.
type FeedExtractor struct {
	parser   *gofeed.Parser
	maxItems int
	now      func() time.Time
}

var _ extractor.Extractor = (*FeedExtractor)(nil)

// NewFeedExtractor keeps at most maxItems accepted items per feed.
func NewFeedExtractor(maxItems int, now func() time.Time) *FeedExtractor {
	if maxItems <= 0 {
		maxItems = 10
	}
	if now == nil {
		now = time.Now
	}
	return &FeedExtractor{parser: gofeed.NewParser(), maxItems: maxItems, now: now}
}

// Name identifies the strategy inside the registry.
func (f *FeedExtractor) Name() string {
	return "gofeed"
}

// Extract parses body and applies the shared acceptance and truncation rules.
func (f *FeedExtractor) Extract(body string) ([]extractor.RawItem, error) {
	feed, err := f.parser.ParseString(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := make([]extractor.RawItem, 0, f.maxItems)
	for _, entry := range feed.Items {
		if len(items) >= f.maxItems {
			break
		}
		if entry == nil {
			continue
		}

		description := entry.Description
		if strings.TrimSpace(description) == "" {
			description = entry.Content
		}

		item := extractor.RawItem{
			Title:       extractor.Truncate(strings.Join(strings.Fields(entry.Title), " "), extractor.MaxTitleRunes),
			Description: extractor.Truncate(htmlToText(description), extractor.MaxDescriptionRunes),
			Link:        strings.TrimSpace(entryLink(entry)),
			Published:   entryPublished(entry),
		}
		if !extractor.Accept(item) {
			continue
		}
		if item.Published == "" {
			item.Published = f.now().UTC().Format(time.RFC3339)
		}
		items = append(items, item)
	}

	return items, nil
}

func entryLink(entry *gofeed.Item) string {
	if entry.Link != "" {
		return entry.Link
	}
	if len(entry.Links) > 0 {
		return entry.Links[0]
	}
	return ""
}

func entryPublished(entry *gofeed.Item) string {
	switch {
	case entry.PublishedParsed != nil:
		return entry.PublishedParsed.UTC().Format(time.RFC3339)
	case entry.UpdatedParsed != nil:
		return entry.UpdatedParsed.UTC().Format(time.RFC3339)
	case entry.Published != "":
		return strings.TrimSpace(entry.Published)
	default:
		return strings.TrimSpace(entry.Updated)
	}
}

// htmlToText drops markup and collapses whitespace; falls back to the
// input when the fragment cannot be parsed.
func htmlToText(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.Join(strings.Fields(fragment), " ")
	}
	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}
