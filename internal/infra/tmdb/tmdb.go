package infra_tmdb

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"sync"

	"golang.org/x/time/rate"

	"github.com/moviemind/core/internal/config"
)

// MovieResult is the part of a TMDB search hit the pipeline cares about.
type MovieResult struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	PosterPath  string `json:"poster_path"`
	Overview    string `json:"overview"`
	ReleaseDate string `json:"release_date"`
}

type searchResponse struct {
	Results []MovieResult `json:"results"`
}

// Client looks up movie posters against the TMDB search API. Results are
// memoized by exact (title, year) pair for the lifetime of the client,
// negative answers included; network calls go through a shared rate
// limiter so concurrent lookups queue instead of bursting.
type Client struct {
	apiKey        string
	baseURL       string
	posterBaseURL string

	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger

	mu sync.Mutex
	// nil value = cached "no such movie"
	cache map[string]*MovieResult
}

type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(cfg config.TMDB, opts ...Option) *Client {
	c := &Client{
		apiKey:        cfg.APIKey,
		baseURL:       cfg.BaseURL,
		posterBaseURL: cfg.PosterBaseURL,
		httpClient:    &http.Client{Timeout: cfg.Timeout},
		limiter:       rate.NewLimiter(rate.Every(cfg.MinInterval), 1),
		logger:        slog.Default(),
		cache:         make(map[string]*MovieResult),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.apiKey == "" {
		c.logger.Warn("TMDB_API_KEY not set, poster lookups disabled")
	}
	return c
}

// SearchMovie returns the first TMDB search hit for (title, year), or nil
// when nothing matched, the credential is missing or the call failed.
// Errors are logged and absorbed, never returned.
func (c *Client) SearchMovie(ctx context.Context, title, year string) *MovieResult {
	if c.apiKey == "" {
		return nil
	}

	key := title + "_" + year

	c.mu.Lock()
	if res, ok := c.cache[key]; ok {
		c.mu.Unlock()
		return res
	}
	c.mu.Unlock()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", title)
	params.Set("include_adult", "false")
	if year != "" {
		params.Set("year", year)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/search/movie?"+params.Encode(), nil)
	if err != nil {
		c.logger.Error("failed to build TMDB request", "error", err)
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("TMDB search failed", "title", title, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("TMDB search returned non-OK status",
			"title", title, "status", resp.StatusCode)
		return nil
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Error("failed to decode TMDB response", "title", title, "error", err)
		return nil
	}

	var res *MovieResult
	if len(body.Results) > 0 {
		res = &body.Results[0]
	}

	c.mu.Lock()
	c.cache[key] = res
	c.mu.Unlock()

	return res
}

// GetPosterURL resolves a movie title to a full poster image URL.
// Returns "" when the movie or its poster path is unknown.
func (c *Client) GetPosterURL(ctx context.Context, title, year string) string {
	if title == "" {
		return ""
	}

	res := c.SearchMovie(ctx, title, year)
	if res == nil || res.PosterPath == "" {
		return ""
	}
	return c.posterBaseURL + res.PosterPath
}
