package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"PodcastDaily/internal/catalog"
	"PodcastDaily/internal/config"
	"PodcastDaily/internal/extractor"
	"PodcastDaily/internal/httpapi"
	"PodcastDaily/internal/infrastructure/fetcher"
	"PodcastDaily/internal/infrastructure/parser"
	"PodcastDaily/internal/logging"
	"PodcastDaily/internal/ports"
	"PodcastDaily/internal/scoring"
	"PodcastDaily/internal/script"
	"PodcastDaily/internal/usecase"
)

// Options replaces collaborators that are otherwise built from config.
type Options struct {
	Fetcher ports.Fetcher
	Random  ports.RandomSource
	Now     func() time.Time
}

// Application wires configs to use cases and transports.
type Application struct {
	cfg     config.Config
	handler *httpapi.Handler
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	return NewWithOptions(cfg, baseLogger, Options{})
}

// NewWithOptions is New with injectable fetcher, randomness and clock.
func NewWithOptions(cfg config.Config, baseLogger *slog.Logger, opts Options) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	registry := catalog.NewRegistry(cfg.Categories)

	feedFetcher := opts.Fetcher
	if feedFetcher == nil {
		feedFetcher = fetcher.NewHTTPFetcher(nil, cfg.Fetch.UserAgent, cfg.Fetch.Timeout, cfg.Fetch.MaxBodyBytes)
	}

	extractors := extractor.NewRegistry()
	extractors.Register(parser.NewPatternExtractor(cfg.Fetch.MaxItems, now))
	extractors.Register(parser.NewFeedExtractor(cfg.Fetch.MaxItems, now))

	ex, err := extractors.Resolve(cfg.Fetch.Extractor)
	if err != nil {
		baseLogger.Warn("unknown extractor, using default", "error", err, "default", config.DefaultExtractor)
		ex, _ = extractors.Resolve(config.DefaultExtractor)
	}

	source := parser.NewFeedSource(feedFetcher, ex, baseLogger.With("component", "source"))

	assembler := usecase.NewAssembler(usecase.AssemblerDeps{
		Registry:   registry,
		Source:     source,
		Scorer:     scoring.NewScorer(scoring.DefaultKeywords, now),
		Renderer:   script.NewRenderer(script.DefaultPacks, opts.Random),
		RSSBaseURL: cfg.Publishing.RSSBaseURL,
		Now:        now,
		Logger:     baseLogger.With("component", "assembler"),
	})

	handler := httpapi.NewHandler(assembler, registry, now, baseLogger.With("component", "httpapi"))

	return &Application{cfg: cfg, handler: handler}
}

// Handler exposes the transport-neutral request handler.
func (a *Application) Handler() *httpapi.Handler {
	return a.handler
}

// Router builds the gin engine for the long-running server.
func (a *Application) Router() *gin.Engine {
	return httpapi.NewRouter(a.handler, a.cfg.Server.AllowOrigins)
}

// Handle runs a single request; used by the CLI.
func (a *Application) Handle(ctx context.Context, req httpapi.Request) httpapi.Response {
	return a.handler.Handle(ctx, req)
}
