package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/planora-ai/planora-api/internal/types"
)

type serpResponse struct {
	OrganicResults []organicResult `json:"organic_results"`
	NewsResults    []newsResult    `json:"news_results"`
	Properties     []property      `json:"properties"`
	Error          string          `json:"error"`
}

type organicResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type newsResult struct {
	Title     string `json:"title"`
	Snippet   string `json:"snippet"`
	Source    string `json:"source"`
	Date      string `json:"date"`
	Link      string `json:"link"`
	Thumbnail string `json:"thumbnail"`
}

type property struct {
	Name          string      `json:"name"`
	Location      string      `json:"location"`
	Amenities     []string    `json:"amenities"`
	OverallRating json.Number `json:"overall_rating"`
	RatePerNight  *struct {
		ExtractedLowest  float64 `json:"extracted_lowest"`
		ExtractedHighest float64 `json:"extracted_highest"`
	} `json:"rate_per_night"`
}

// Client calls the SerpAPI search endpoint with a bounded retry.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	maxRetries int
}

func NewClient(baseURL string, timeout time.Duration, maxRetries int) *Client {
	if baseURL == "" {
		baseURL = "https://serpapi.com/search.json"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if maxRetries < 0 {
		maxRetries = 2
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     os.Getenv("SERPAPI_API_KEY"),
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
	}
}

func (c *Client) hasKey() bool {
	return c.apiKey != ""
}

// search runs one query, retrying with linear backoff (400ms, 800ms, ...)
// on failure.
func (c *Client) search(ctx context.Context, params url.Values) (*serpResponse, error) {
	if !c.hasKey() {
		return nil, fmt.Errorf("%w: SerpAPI key not set", types.ErrProviderUnavailable)
	}
	params.Set("api_key", c.apiKey)

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * 400 * time.Millisecond
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %s", types.ErrProviderUnavailable, ctx.Err())
			case <-time.After(backoff):
			}
		}
		resp, err := c.doSearch(ctx, params)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func (c *Client) doSearch(ctx context.Context, params url.Values) (*serpResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrProviderUnavailable, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: SerpAPI returned %d", types.ErrProviderUnavailable, resp.StatusCode)
	}
	var out serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrProviderUnavailable, err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("%w: %s", types.ErrProviderUnavailable, errors.New(out.Error))
	}
	return &out, nil
}
