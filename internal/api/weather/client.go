package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/planora-ai/planora-api/internal/types"
)

// openWeatherCurrent mirrors the fields we read from the current
// conditions endpoint.
type openWeatherCurrent struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Visibility *float64           `json:"visibility,omitempty"`
	Rain       map[string]float64 `json:"rain,omitempty"`
}

// openWeatherForecast mirrors the 5-day / 3-hourly forecast endpoint.
type openWeatherForecast struct {
	List []forecastEntry `json:"list"`
}

type forecastEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64  `json:"temp"`
		TempMin  *float64 `json:"temp_min,omitempty"`
		TempMax  *float64 `json:"temp_max,omitempty"`
		Humidity float64  `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Pop  float64 `json:"pop"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Client calls the OpenWeather HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org/data/2.5"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     os.Getenv("OPENWEATHER_API_KEY"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) getCurrent(ctx context.Context, coords types.Coordinates) (*openWeatherCurrent, error) {
	var out openWeatherCurrent
	if err := c.get(ctx, "/weather", coords, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) getForecast(ctx context.Context, coords types.Coordinates) (*openWeatherForecast, error) {
	var out openWeatherForecast
	if err := c.get(ctx, "/forecast", coords, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, coords types.Coordinates, dst interface{}) error {
	if c.apiKey == "" {
		return fmt.Errorf("%w: OpenWeather API key not set", types.ErrProviderUnavailable)
	}

	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%g", coords.Lat))
	params.Set("lon", fmt.Sprintf("%g", coords.Lon))
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: %s", types.ErrProviderUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", types.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: OpenWeather returned %d", types.ErrProviderUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %s", types.ErrProviderUnavailable, err)
	}
	return nil
}
