package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"

	"PodcastDaily/internal/catalog"
	"PodcastDaily/internal/domain"
	"PodcastDaily/internal/logging"
	"PodcastDaily/internal/usecase"
)

const (
	DefaultCategory = "ai-tech"
	DefaultLanguage = "en"

	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Generator produces episodes; *usecase.Assembler satisfies it.
type Generator interface {
	Assemble(ctx context.Context, category, language string) (domain.Episode, error)
	AssembleAll(ctx context.Context) []domain.Episode
}

// Request is the transport-independent view of an inbound call.
type Request struct {
	Method string
	Query  url.Values
}

// Response is what every adapter writes back verbatim.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

type singleResponse struct {
	Success bool           `json:"success"`
	Episode domain.Episode `json:"episode"`
}

type allResponse struct {
	Success   bool             `json:"success"`
	Generated int              `json:"generated"`
	Episodes  []domain.Episode `json:"episodes"`
	Timestamp string           `json:"timestamp"`
}

type historyResponse struct {
	Success  bool             `json:"success"`
	Episodes []domain.Episode `json:"episodes"`
}

type invalidResponse struct {
	Error              string   `json:"error"`
	AvailableBunches   []string `json:"availableBunches"`
	AvailableLanguages []string `json:"availableLanguages"`
}

type failureResponse struct {
	Error     string `json:"error"`
	Stack     string `json:"stack"`
	Timestamp string `json:"timestamp"`
}

// Handler is stateless; it can serve concurrent requests.
type Handler struct {
	generator Generator
	registry  *catalog.Registry
	now       func() time.Time
	logger    *slog.Logger
}

// NewHandler binds the generator and the registry used for validation.
func NewHandler(generator Generator, registry *catalog.Registry, now func() time.Time, logger *slog.Logger) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{generator: generator, registry: registry, now: now, logger: logger}
}

// Headers are attached to every response, including errors and preflight.
func Headers() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type",
		"Content-Type":                 "application/json",
	}
}

// Handle dispatches on query parameters. It never panics.
func (h *Handler) Handle(ctx context.Context, req Request) (resp Response) {
	log := h.requestLogger()
	defer func() {
		if r := recover(); r != nil {
			resp = h.failure(log, fmt.Sprint(r), string(debug.Stack()))
		}
	}()

	if strings.EqualFold(req.Method, http.MethodOptions) {
		return Response{StatusCode: http.StatusNoContent, Headers: Headers()}
	}

	query := req.Query
	if query == nil {
		query = url.Values{}
	}

	if query.Get("action") == "history" {
		return h.respond(http.StatusOK, historyResponse{Success: true, Episodes: []domain.Episode{}})
	}

	if strings.EqualFold(query.Get("all"), "true") {
		episodes := h.generator.AssembleAll(ctx)
		log.Info("generated all episodes", "count", len(episodes))
		return h.respond(http.StatusOK, allResponse{
			Success:   true,
			Generated: len(episodes),
			Episodes:  episodes,
			Timestamp: h.timestamp(),
		})
	}

	category := valueOr(query.Get("bunch"), DefaultCategory)
	language := valueOr(query.Get("lang"), DefaultLanguage)

	if !h.registry.Has(category, language) {
		return h.invalid(log, category, language)
	}

	episode, err := h.generator.Assemble(ctx, category, language)
	if errors.Is(err, usecase.ErrUnsupportedPair) {
		return h.invalid(log, category, language)
	}
	if err != nil {
		return h.failure(log, err.Error(), "")
	}

	log.Info("generated episode", "id", episode.ID, "engagement", episode.EngagementLevel)
	return h.respond(http.StatusOK, singleResponse{Success: true, Episode: episode})
}

func (h *Handler) invalid(log *slog.Logger, category, language string) Response {
	log.Info("rejected request", "bunch", category, "lang", language)
	return h.respond(http.StatusBadRequest, invalidResponse{
		Error:              fmt.Sprintf("Invalid bunch or language: %s/%s", category, language),
		AvailableBunches:   h.registry.Categories(),
		AvailableLanguages: h.registry.Languages(),
	})
}

func (h *Handler) failure(log *slog.Logger, msg, stack string) Response {
	log.Error("request failed", "error", msg)
	return h.respond(http.StatusInternalServerError, failureResponse{
		Error:     msg,
		Stack:     stack,
		Timestamp: h.timestamp(),
	})
}

func (h *Handler) respond(status int, payload any) Response {
	body, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(failureResponse{Error: err.Error(), Timestamp: h.timestamp()})
	}
	return Response{StatusCode: status, Headers: Headers(), Body: body}
}

func (h *Handler) timestamp() string {
	return h.now().UTC().Format(timestampLayout)
}

func (h *Handler) requestLogger() *slog.Logger {
	if h.logger == nil {
		return logging.Discard()
	}
	return h.logger.With("request_id", uuid.NewString())
}

func valueOr(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}
