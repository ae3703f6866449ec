package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"movieranker/pkg/utils"
)

// PlaceholderPoster is used when the provider has no poster for a movie.
const PlaceholderPoster = "https://via.placeholder.com/500x750?text=No+Image+Available"

// Client talks to the TMDB HTTP API. One outbound request per call,
// no caching, no retries.
type Client struct {
	cfg    utils.TMDBConfig
	client *http.Client
}

func NewClient(cfg utils.TMDBConfig) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: 12 * time.Second},
	}
}

// HTTPClient exposes the underlying client so tests can intercept it.
func (c *Client) HTTPClient() *http.Client { return c.client }

// SearchResult is one entry from the provider's search response,
// passed through verbatim for the user to pick from.
type SearchResult struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
}

type searchResponse struct {
	Results []SearchResult `json:"results"`
}

// MovieDetails is the provider's detail object for a single movie.
type MovieDetails struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
}

// Search runs a free-text title query and returns the provider's
// result list unmodified.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	u, err := url.Parse(c.cfg.APIBaseURL + "/search/movie")
	if err != nil {
		return nil, fmt.Errorf("tmdb: parse search url: %w", err)
	}
	q := u.Query()
	q.Set("api_key", c.cfg.APIKey)
	q.Set("query", query)
	u.RawQuery = q.Encode()

	var sr searchResponse
	if err := c.getJSON(ctx, u.String(), &sr); err != nil {
		return nil, err
	}
	return sr.Results, nil
}

// Details fetches the full detail object for one external movie id.
func (c *Client) Details(ctx context.Context, movieID int64) (*MovieDetails, error) {
	u, err := url.Parse(fmt.Sprintf("%s/movie/%d", c.cfg.APIBaseURL, movieID))
	if err != nil {
		return nil, fmt.Errorf("tmdb: parse details url: %w", err)
	}
	q := u.Query()
	q.Set("api_key", c.cfg.APIKey)
	u.RawQuery = q.Encode()

	var d MovieDetails
	if err := c.getJSON(ctx, u.String(), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// PosterURL maps a provider poster path to a full image URL,
// substituting the placeholder when the path is empty.
func (c *Client) PosterURL(posterPath string) string {
	if posterPath == "" {
		return PlaceholderPoster
	}
	return c.cfg.ImageBaseURL + posterPath
}

// YearFromReleaseDate parses the leading four characters of a provider
// release date ("2010-07-15" -> 2010). Malformed or absent dates fall
// back to 0 instead of failing the import.
func YearFromReleaseDate(releaseDate string) int {
	if len(releaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(strings.TrimSpace(releaseDate[:4]))
	if err != nil {
		return 0
	}
	return year
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("tmdb: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb: request: %w", err)
	}

	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{URL: rawURL, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("tmdb: decode: %w", err)
	}
	return nil
}
