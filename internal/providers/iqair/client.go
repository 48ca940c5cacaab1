package iqair

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/environment"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/providers"
)

// Config controls how the IQAir client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	City       string
	State      string
	Country    string
	HTTPClient *http.Client
}

// Client fetches air quality readings from the IQAir AirVisual API and
// maps them to domain models.
type Client struct {
	baseURL    string
	apiKey     string
	city       string
	state      string
	country    string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs an IQAir client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		city:       orDefault(cfg.City, defaultCity),
		state:      orDefault(cfg.State, defaultState),
		country:    orDefault(cfg.Country, defaultCountry),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// FetchAirQuality retrieves the current reading for the configured city.
func (c *Client) FetchAirQuality(ctx context.Context) (environment.AirQuality, error) {
	req, err := c.buildRequest(ctx)
	if err != nil {
		return environment.AirQuality{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return environment.AirQuality{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return environment.AirQuality{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    strings.TrimSpace(string(body)),
		}
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return environment.AirQuality{}, fmt.Errorf("iqair: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload cityResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return environment.AirQuality{}, err
	}
	if payload.Status != "success" {
		return environment.AirQuality{}, fmt.Errorf("iqair: upstream status %q", payload.Status)
	}

	return mapReading(payload.Data, c.now().UTC()), nil
}

func (c *Client) buildRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/city", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("city", c.city)
	q.Set("state", c.state)
	q.Set("country", c.country)
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	req.URL.RawQuery = q.Encode()

	return req, nil
}

// parseRetryAfter reads the Retry-After header, accepting both the
// delta-seconds and HTTP-date forms.
func parseRetryAfter(resp *http.Response) time.Duration {
	raw := resp.Header.Get("Retry-After")
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if when, err := http.ParseTime(raw); err == nil {
		if d := time.Until(when); d > 0 {
			return d
		}
	}
	return 0
}
