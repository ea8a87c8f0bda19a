package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
)

const defaultBaseURL = "https://api.weatherapi.com/v1"

var (
	errUnexpectedStatus = errors.New("unexpected status code")
)

// Client is a thin wrapper over the weatherapi.com REST API. All calls go
// through a shared circuit breaker so a misbehaving upstream trips fast
// instead of stalling every chat handler behind timeouts.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	circuit    *gobreaker.CircuitBreaker
}

// NewClient creates a Client. baseURL may be empty to use the production
// endpoint; tests point it at an httptest server.
func NewClient(httpClient *http.Client, apiKey, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weatherapi",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    baseURL,
		circuit:    cb,
	}
}

// Current fetches current conditions for a coordinate pair.
func (c *Client) Current(ctx context.Context, lat, long float64) (*CurrentResponse, error) {
	var out CurrentResponse
	if err := c.get(ctx, "/current.json", coordQuery(lat, long), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Forecast fetches an n-day forecast, including weather alerts.
func (c *Client) Forecast(ctx context.Context, lat, long float64, days int) (*ForecastResponse, error) {
	q := coordQuery(lat, long)
	q.Set("days", fmt.Sprintf("%d", days))
	q.Set("alerts", "yes")
	var out ForecastResponse
	if err := c.get(ctx, "/forecast.json", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TimezoneByCoords looks up the place and local time at a coordinate pair.
func (c *Client) TimezoneByCoords(ctx context.Context, lat, long float64) (*TimezoneResponse, error) {
	var out TimezoneResponse
	if err := c.get(ctx, "/timezone.json", coordQuery(lat, long), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TimezoneByCity looks up the place and local time for a free-text city name.
func (c *Client) TimezoneByCity(ctx context.Context, city string) (*TimezoneResponse, error) {
	q := url.Values{}
	q.Set("q", city)
	var out TimezoneResponse
	if err := c.get(ctx, "/timezone.json", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func coordQuery(lat, long float64) url.Values {
	q := url.Values{}
	q.Set("q", fmt.Sprintf("%g,%g", lat, long))
	return q
}

// get performs a single GET through the circuit breaker and decodes the
// JSON body into out. There is deliberately no retry loop here: failed
// lookups surface to the caller immediately.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	query.Set("key", c.apiKey)
	u := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	result, err := c.circuit.Execute(func() (interface{}, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: %d", errUnexpectedStatus, resp.StatusCode)
		}
		return resp, nil
	})
	if err != nil {
		return fmt.Errorf("weatherapi %s: %w", path, err)
	}

	resp := result.(*http.Response)
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("weatherapi %s: decode: %w", path, err)
	}
	return nil
}
