package parser

import (
	"html"
	"regexp"
	"strings"
	"time"

	"PodcastDaily/internal/extractor"
)

var (
	itemExpr     = regexp.MustCompile(`(?is)<(?:item|entry)(?:\s[^>]*)?>(.*?)</(?:item|entry)>`)
	markupExpr   = regexp.MustCompile(`<[^>]*>`)
	linkHrefExpr = regexp.MustCompile(`(?is)<link\b[^>]*?href\s*=\s*["']([^"']+)["']`)
	cdataMarkers = strings.NewReplacer("<![CDATA[", "", "]]>", "")

	titleTags       = []string{"title"}
	descriptionTags = []string{"description", "summary", "content"}
	linkTags        = []string{"link"}
	dateTags        = []string{"pubDate", "published", "updated", "dc:date"}

	cdataExprs = map[string]*regexp.Regexp{}
	plainExprs = map[string]*regexp.Regexp{}
)

func init() {
	for _, group := range [][]string{titleTags, descriptionTags, linkTags, dateTags} {
		for _, tag := range group {
			quoted := regexp.QuoteMeta(tag)
			cdataExprs[tag] = regexp.MustCompile(`(?is)<` + quoted + `(?:\s[^>]*)?>\s*<!\[CDATA\[(.*?)\]\]>\s*</` + quoted + `>`)
			plainExprs[tag] = regexp.MustCompile(`(?is)<` + quoted + `(?:\s[^>]*)?>(.*?)</` + quoted + `>`)
		}
	}
}

// PatternExtractor scans feed text with regular expressions instead of an
// XML parser, so broken markup only costs the affected item.
type PatternExtractor struct {
	maxItems int
	now      func() time.Time
}

var _ extractor.Extractor = (*PatternExtractor)(nil)

// NewPatternExtractor keeps at most maxItems accepted items per feed.
func NewPatternExtractor(maxItems int, now func() time.Time) *PatternExtractor {
	if maxItems <= 0 {
		maxItems = 10
	}
	if now == nil {
		now = time.Now
	}
	return &PatternExtractor{maxItems: maxItems, now: now}
}

// Name identifies the strategy inside the registry.
func (p *PatternExtractor) Name() string {
	return "pattern"
}

// Extract never fails; an unrecognisable body simply yields no items.
func (p *PatternExtractor) Extract(body string) ([]extractor.RawItem, error) {
	items := make([]extractor.RawItem, 0, p.maxItems)

	for _, match := range itemExpr.FindAllStringSubmatch(body, -1) {
		if len(items) >= p.maxItems {
			break
		}

		item, ok := p.parseBlock(match[1])
		if !ok {
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

func (p *PatternExtractor) parseBlock(block string) (extractor.RawItem, bool) {
	title := cleanText(firstTag(block, titleTags))
	title = extractor.Truncate(title, extractor.MaxTitleRunes)

	description := stripMarkup(firstTag(block, descriptionTags))
	description = extractor.Truncate(description, extractor.MaxDescriptionRunes)

	item := extractor.RawItem{
		Title:       title,
		Description: description,
		Link:        extractLink(block),
		Published:   strings.TrimSpace(firstPlainTag(block, dateTags)),
	}
	if !extractor.Accept(item) {
		return extractor.RawItem{}, false
	}

	if item.Published == "" {
		item.Published = p.now().UTC().Format(time.RFC3339)
	}
	return item, true
}

// firstTag prefers CDATA-wrapped content and falls back to plain content,
// trying each tag in order until one yields something.
func firstTag(block string, tags []string) string {
	for _, tag := range tags {
		if m := cdataExprs[tag].FindStringSubmatch(block); m != nil && strings.TrimSpace(m[1]) != "" {
			return m[1]
		}
		if m := plainExprs[tag].FindStringSubmatch(block); m != nil && strings.TrimSpace(m[1]) != "" {
			return m[1]
		}
	}
	return ""
}

func firstPlainTag(block string, tags []string) string {
	for _, tag := range tags {
		if m := plainExprs[tag].FindStringSubmatch(block); m != nil && strings.TrimSpace(m[1]) != "" {
			return cdataMarkers.Replace(m[1])
		}
	}
	return ""
}

func extractLink(block string) string {
	if link := strings.TrimSpace(firstPlainTag(block, linkTags)); link != "" {
		return html.UnescapeString(link)
	}
	if m := linkHrefExpr.FindStringSubmatch(block); m != nil {
		return html.UnescapeString(strings.TrimSpace(m[1]))
	}
	return ""
}

func cleanText(s string) string {
	s = cdataMarkers.Replace(s)
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}

// stripMarkup decodes entities first so escaped HTML in plain descriptions
// is removed as well.
func stripMarkup(s string) string {
	s = cdataMarkers.Replace(s)
	s = html.UnescapeString(s)
	s = markupExpr.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}
