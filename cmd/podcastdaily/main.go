package main

import (
	"context"
	"net/http"
	"net/url"
	"os"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"PodcastDaily/internal/app"
	"PodcastDaily/internal/config"
	"PodcastDaily/internal/httpapi"
	"PodcastDaily/internal/logging"
)

func main() {
	bunch := flag.StringP("bunch", "b", httpapi.DefaultCategory, "category key")
	lang := flag.StringP("lang", "l", httpapi.DefaultLanguage, "language key")
	all := flag.BoolP("all", "a", false, "generate every category and language")
	history := flag.Bool("history", false, "list stored episodes (always empty)")
	flag.Parse()

	godotenv.Load()

	ctx := context.Background()
	cfg := config.Load()
	// stdout carries the JSON payload
	logger := logging.NewWithWriter(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	application := app.New(cfg, logger)

	query := url.Values{"bunch": {*bunch}, "lang": {*lang}}
	if *all {
		query.Set("all", "true")
	}
	if *history {
		query.Set("action", "history")
	}

	resp := application.Handle(ctx, httpapi.Request{Method: http.MethodGet, Query: query})
	os.Stdout.Write(append(resp.Body, '\n'))

	if resp.StatusCode >= http.StatusBadRequest {
		logger.Error("generation failed", "status", resp.StatusCode)
		os.Exit(1)
	}
}
