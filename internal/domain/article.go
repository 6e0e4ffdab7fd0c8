package domain

// Article is a feed item that survived extraction, enriched with its score.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	// PublishedAt keeps the feed's raw timestamp text; parsing happens at scoring time.
	PublishedAt string `json:"pubDate"`
	SourceHost  string `json:"source"`
	Score       int    `json:"score"`
}
