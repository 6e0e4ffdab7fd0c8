package parser

import (
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

var fixedNow = time.Date(2025, time.November, 8, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func rssItem(title, description string) string {
	return fmt.Sprintf(`<item>
  <title>%s</title>
  <description>%s</description>
  <link>https://example.com/%s</link>
  <pubDate>Sat, 08 Nov 2025 10:00:00 +0000</pubDate>
</item>`, title, description, strings.ReplaceAll(title, " ", "-"))
}

func TestPatternExtractCDATAAndPlain(t *testing.T) {
	t.Parallel()

	body := `<rss><channel><title>Feed</title>
<item>
  <title><![CDATA[ Wrapped <Title> ]]></title>
  <description><![CDATA[<p>Hello <b>world</b>!</p>]]></description>
  <link> https://example.com/a </link>
  <pubDate>Sat, 08 Nov 2025 10:00:00 +0000</pubDate>
</item>
<item>
  <title>Plain &amp; simple</title>
  <description>&lt;p&gt;Escaped markup&lt;/p&gt;</description>
</item>
</channel></rss>`

	items, err := NewPatternExtractor(10, fixedClock).Extract(body)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	first := items[0]
	if first.Title != "Wrapped <Title>" {
		t.Fatalf("unexpected title: %q", first.Title)
	}
	if first.Description != "Hello world!" {
		t.Fatalf("unexpected description: %q", first.Description)
	}
	if first.Link != "https://example.com/a" {
		t.Fatalf("unexpected link: %q", first.Link)
	}
	if first.Published != "Sat, 08 Nov 2025 10:00:00 +0000" {
		t.Fatalf("unexpected pubDate: %q", first.Published)
	}

	second := items[1]
	if second.Title != "Plain & simple" {
		t.Fatalf("unexpected title: %q", second.Title)
	}
	if second.Description != "Escaped markup" {
		t.Fatalf("unexpected description: %q", second.Description)
	}
	if second.Link != "" {
		t.Fatalf("expected empty link, got %q", second.Link)
	}
	if second.Published != fixedNow.Format(time.RFC3339) {
		t.Fatalf("missing pubDate should default to now, got %q", second.Published)
	}
}

func TestPatternExtractDropsMalformedAndCaps(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString("<rss><channel>")
	for i := 0; i < 12; i++ {
		b.WriteString(rssItem(fmt.Sprintf("Story %d", i), "Some description"))
		if i%3 == 0 {
			b.WriteString(`<item><title>No description</title></item>`)
			b.WriteString(`<item><description>No title</description></item>`)
			b.WriteString(`<item><title>   </title><description>blank title</description></item>`)
		}
	}
	b.WriteString("</channel></rss>")

	items, err := NewPatternExtractor(10, fixedClock).Extract(b.String())
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if len(items) != 10 {
		t.Fatalf("expected 10 items, got %d", len(items))
	}
	for i, item := range items {
		if item.Title != fmt.Sprintf("Story %d", i) {
			t.Fatalf("item %d out of order or malformed: %q", i, item.Title)
		}
	}
}

func TestPatternExtractFewerThanCap(t *testing.T) {
	t.Parallel()

	body := rssItem("One", "d1") + `<item><title>bad</title></item>` + rssItem("Two", "d2")
	items, _ := NewPatternExtractor(10, fixedClock).Extract(body)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
}

func TestPatternExtractTruncates(t *testing.T) {
	t.Parallel()

	longTitle := strings.Repeat("ü", 250)
	longDesc := strings.Repeat("a", 700)
	items, _ := NewPatternExtractor(10, fixedClock).Extract(rssItem(longTitle, longDesc))
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if n := utf8.RuneCountInString(items[0].Title); n != 200 {
		t.Fatalf("title should be 200 runes, got %d", n)
	}
	if n := utf8.RuneCountInString(items[0].Description); n != 500 {
		t.Fatalf("description should be 500 runes, got %d", n)
	}
}

func TestPatternExtractAtomEntries(t *testing.T) {
	t.Parallel()

	body := `<feed xmlns="http://www.w3.org/2005/Atom">
<entry>
  <title type="html">Atom headline</title>
  <link rel="alternate" href="https://example.org/atom-1"/>
  <summary>Atom summary text</summary>
  <published>2025-11-08T09:00:00Z</published>
</entry>
</feed>`

	items, _ := NewPatternExtractor(10, fixedClock).Extract(body)
	if len(items) != 1 {
		t.Fatalf("expected 1 atom entry, got %d", len(items))
	}
	if items[0].Link != "https://example.org/atom-1" {
		t.Fatalf("unexpected link: %q", items[0].Link)
	}
	if items[0].Description != "Atom summary text" {
		t.Fatalf("unexpected description: %q", items[0].Description)
	}
	if items[0].Published != "2025-11-08T09:00:00Z" {
		t.Fatalf("unexpected published: %q", items[0].Published)
	}
}

func TestPatternExtractGarbage(t *testing.T) {
	t.Parallel()

	for _, body := range []string{"", "not xml at all", "<item><title>unterminated"} {
		items, err := NewPatternExtractor(10, fixedClock).Extract(body)
		if err != nil {
			t.Fatalf("pattern extractor must not fail: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("expected no items for %q, got %d", body, len(items))
		}
	}
}
