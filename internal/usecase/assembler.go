package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"PodcastDaily/internal/catalog"
	"PodcastDaily/internal/domain"
	"PodcastDaily/internal/ports"
)

const (
	minSelected = 3
	maxSelected = 5

	placeholderDuration = "0:30"
	emptyScript         = "No content available for today. Please try again later."
	errorScript         = "Error occurred during generation. Please try again later."
)

// ErrUnsupportedPair marks a category/language combination absent from the registry.
var ErrUnsupportedPair = errors.New("unsupported category/language pair")

// AssemblerDeps wires all driven adapters into the episode assembler.
type AssemblerDeps struct {
	Registry   *catalog.Registry
	Source     ports.ArticleSource
	Scorer     ports.Scorer
	Renderer   ports.ScriptRenderer
	RSSBaseURL string
	Now        func() time.Time
	Logger     *slog.Logger
}

// Assembler implements the fetch, score, rank and render workflow.
type Assembler struct {
	registry   *catalog.Registry
	source     ports.ArticleSource
	scorer     ports.Scorer
	renderer   ports.ScriptRenderer
	rssBaseURL string
	now        func() time.Time
	logger     *slog.Logger
}

// NewAssembler constructs the orchestration component.
func NewAssembler(deps AssemblerDeps) *Assembler {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Assembler{
		registry:   deps.Registry,
		source:     deps.Source,
		scorer:     deps.Scorer,
		renderer:   deps.Renderer,
		rssBaseURL: strings.TrimSuffix(deps.RSSBaseURL, "/"),
		now:        now,
		logger:     deps.Logger,
	}
}

// Assemble builds one episode. The only error is ErrUnsupportedPair, returned
// before any feed is fetched; every other failure ends up in the episode.
func (a *Assembler) Assemble(ctx context.Context, category, language string) (domain.Episode, error) {
	feeds, ok := a.registry.Sources(category, language)
	if !ok {
		return domain.Episode{}, fmt.Errorf("%w: %s-%s", ErrUnsupportedPair, category, language)
	}

	date := a.now().UTC().Format("2006-01-02")
	pair := catalog.Pair{Category: category, Language: language}
	return a.finish(pair, date, a.gather(ctx, pair, feeds)), nil
}

// AssembleAll builds an episode for every registry pair and returns them in
// registry order. Feeds are collected and scored concurrently; rendering runs
// in registry order so a seeded RandomSource gives reproducible scripts.
// A failing pair never stops the others.
func (a *Assembler) AssembleAll(ctx context.Context) []domain.Episode {
	pairs := a.registry.Pairs()
	date := a.now().UTC().Format("2006-01-02")

	pools := make([]gathered, len(pairs))
	var wg sync.WaitGroup
	for i, pair := range pairs {
		wg.Add(1)
		go func(i int, pair catalog.Pair) {
			defer wg.Done()
			feeds, _ := a.registry.Sources(pair.Category, pair.Language)
			pools[i] = a.gather(ctx, pair, feeds)
		}(i, pair)
	}
	wg.Wait()

	episodes := make([]domain.Episode, len(pairs))
	for i, pair := range pairs {
		episodes[i] = a.finish(pair, date, pools[i])
	}
	return episodes
}

// gathered is the scored article pool of one pair, or the panic that
// interrupted collecting it.
type gathered struct {
	articles []domain.Article
	failure  string
}

func (a *Assembler) gather(ctx context.Context, pair catalog.Pair, feeds []string) (g gathered) {
	defer func() {
		if r := recover(); r != nil {
			g = gathered{failure: fmt.Sprint(r)}
		}
	}()

	a.info("generate episode", "category", pair.Category, "language", pair.Language, "feeds", len(feeds))

	articles := a.source.Collect(ctx, feeds)
	for i := range articles {
		articles[i].Score = a.scorer.Score(articles[i], pair.Language)
	}
	return gathered{articles: articles}
}

func (a *Assembler) finish(pair catalog.Pair, date string, g gathered) (episode domain.Episode) {
	category, language := pair.Category, pair.Language
	failed := func(msg string) domain.Episode {
		a.logError("episode generation failed", "category", category, "language", language, "panic", msg)
		ep := a.degenerate(category, language, date, domain.EngagementError, errorScript)
		ep.Description = "Error generating episode."
		ep.Error = msg
		return ep
	}
	defer func() {
		if r := recover(); r != nil {
			episode = failed(fmt.Sprint(r))
		}
	}()

	if g.failure != "" {
		return failed(g.failure)
	}

	selected := SelectTop(g.articles)
	if len(selected) == 0 {
		a.info("no articles available", "category", category, "language", language)
		episode = a.degenerate(category, language, date, domain.EngagementLow, emptyScript)
		episode.Description = "No new articles available today."
		episode.HostsUsed = a.renderer.Hosts(category, language)
		return episode
	}

	total := lo.SumBy(selected, func(art domain.Article) int { return art.Score })
	avg := float64(total) / float64(len(selected))
	script := a.renderer.Render(selected, category, language)

	episode = a.base(category, language, date)
	episode.Description = fmt.Sprintf("Today's top %s stories: %s",
		domain.SpokenName(category),
		strings.Join(lo.Map(selected, func(art domain.Article, _ int) string { return art.Title }), ", "))
	episode.Script = script
	episode.Duration = domain.EstimateDuration(script)
	episode.Articles = selected
	episode.TotalScore = total
	episode.AverageScore = avg
	episode.EngagementLevel = domain.EngagementFor(avg)

	a.info("episode generated",
		"id", episode.ID,
		"articles", len(selected),
		"total_score", total,
		"engagement", episode.EngagementLevel,
		"duration", episode.Duration)
	return episode
}

// SelectTop stable-sorts by descending score and keeps at most five
// articles. Pools smaller than three are returned whole, never padded.
func SelectTop(articles []domain.Article) []domain.Article {
	ranked := slices.Clone(articles)
	slices.SortStableFunc(ranked, func(x, y domain.Article) int {
		return y.Score - x.Score
	})

	k := len(ranked)
	if k > maxSelected {
		k = maxSelected
	}
	if k < minSelected {
		k = len(ranked)
	}
	return ranked[:k]
}

func (a *Assembler) base(category, language, date string) domain.Episode {
	episode := domain.Episode{
		ID:        fmt.Sprintf("%s-%s-%s", category, language, date),
		Category:  category,
		Language:  language,
		Date:      date,
		Title:     fmt.Sprintf("%s Daily - %s", domain.DisplayName(category), date),
		Articles:  []domain.Article{},
		HostsUsed: a.renderer.Hosts(category, language),
	}
	if a.rssBaseURL != "" {
		episode.RSSURL = fmt.Sprintf("%s/%s/%s/rss.xml", a.rssBaseURL, category, language)
	}
	return episode
}

// degenerate must not depend on anything that may have panicked, so it
// avoids the renderer.
func (a *Assembler) degenerate(category, language, date string, level domain.EngagementLevel, script string) domain.Episode {
	episode := domain.Episode{
		ID:              fmt.Sprintf("%s-%s-%s", category, language, date),
		Category:        category,
		Language:        language,
		Date:            date,
		Title:           fmt.Sprintf("%s Daily - %s", domain.DisplayName(category), date),
		Script:          script,
		Duration:        placeholderDuration,
		Articles:        []domain.Article{},
		EngagementLevel: level,
	}
	if a.rssBaseURL != "" {
		episode.RSSURL = fmt.Sprintf("%s/%s/%s/rss.xml", a.rssBaseURL, category, language)
	}
	return episode
}

func (a *Assembler) info(msg string, args ...interface{}) {
	if a.logger != nil {
		a.logger.Info(msg, args...)
	}
}

func (a *Assembler) logError(msg string, args ...interface{}) {
	if a.logger != nil {
		a.logger.Error(msg, args...)
	}
}
