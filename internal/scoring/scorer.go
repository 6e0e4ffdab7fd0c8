package scoring

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"PodcastDaily/internal/domain"
	"PodcastDaily/internal/ports"
)

const (
	titleKeywordPoints       = 3
	descriptionKeywordPoints = 1
	descriptionBonusPoints   = 2
	questionPoints           = 1
	digitPoints              = 1

	descriptionMinRunes = 100
	descriptionMaxRunes = 500
)

// DefaultKeywords are the trending keyword lists per language.
var DefaultKeywords = map[string][]string{
	"en": {
		"breaking", "exclusive", "urgent", "record", "breakthrough", "first",
		"launch", "billion", "crisis", "warning", "revealed", "artificial intelligence",
		"chatgpt", "openai", "election", "inflation", "recession", "study finds",
	},
	"de": {
		"eilmeldung", "exklusiv", "rekord", "durchbruch", "erstmals", "milliarden",
		"krise", "warnung", "künstliche intelligenz", "chatgpt", "wahl", "inflation",
		"rezession", "studie",
	},
}

var timeLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC822Z,
	time.RFC822,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// zoneOffsets covers the abbreviations seen in RSS pubDate fields. time.Parse
// only knows the local zone's abbreviation and reads any other one as a
// zero offset.
var zoneOffsets = map[string]int{
	"EST": -5, "EDT": -4,
	"CST": -6, "CDT": -5,
	"MST": -7, "MDT": -6,
	"PST": -8, "PDT": -7,
	"CET": 1, "CEST": 2,
	"MEZ": 1, "MESZ": 2,
}

// Scorer is a linear point heuristic over article fields.
type Scorer struct {
	keywords map[string][]string
	fallback string
	now      func() time.Time
}

var _ ports.Scorer = (*Scorer)(nil)

// NewScorer lower-cases keyword lists once; unknown languages use "en".
func NewScorer(keywords map[string][]string, now func() time.Time) *Scorer {
	if keywords == nil {
		keywords = DefaultKeywords
	}
	if now == nil {
		now = time.Now
	}

	normalized := make(map[string][]string, len(keywords))
	for lang, words := range keywords {
		for _, w := range words {
			if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
				normalized[lang] = append(normalized[lang], w)
			}
		}
	}
	return &Scorer{keywords: normalized, fallback: "en", now: now}
}

// Score sums independent contributions; there is no upper bound.
func (s *Scorer) Score(article domain.Article, language string) int {
	keywords, ok := s.keywords[language]
	if !ok {
		keywords = s.keywords[s.fallback]
	}

	title := strings.ToLower(article.Title)
	description := strings.ToLower(article.Description)

	score := 0
	for _, kw := range keywords {
		if strings.Contains(title, kw) {
			score += titleKeywordPoints
		}
		if strings.Contains(description, kw) {
			score += descriptionKeywordPoints
		}
	}

	score += RecencyBonus(s.age(article.PublishedAt))

	if n := utf8.RuneCountInString(article.Description); n > descriptionMinRunes && n < descriptionMaxRunes {
		score += descriptionBonusPoints
	}
	if strings.Contains(article.Title, "?") {
		score += questionPoints
	}
	if strings.IndexFunc(article.Title, unicode.IsDigit) >= 0 {
		score += digitPoints
	}

	return score
}

// RecencyBonus maps article age onto the freshness tiers.
func RecencyBonus(age time.Duration) int {
	switch {
	case age < 6*time.Hour:
		return 5
	case age < 24*time.Hour:
		return 3
	case age < 72*time.Hour:
		return 1
	default:
		return 0
	}
}

// age treats an unparsable timestamp as "just published".
func (s *Scorer) age(published string) time.Duration {
	now := s.now()
	ts, ok := ParseTimestamp(published)
	if !ok {
		return 0
	}
	return now.Sub(ts)
}

// ParseTimestamp tries the date layouts commonly found in RSS and Atom feeds.
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return withKnownZone(ts), true
		}
	}
	return time.Time{}, false
}

func withKnownZone(ts time.Time) time.Time {
	name, offset := ts.Zone()
	if offset != 0 {
		return ts
	}
	hours, ok := zoneOffsets[name]
	if !ok {
		return ts
	}
	y, mo, d := ts.Date()
	h, mi, sec := ts.Clock()
	return time.Date(y, mo, d, h, mi, sec, ts.Nanosecond(), time.FixedZone(name, hours*3600))
}
