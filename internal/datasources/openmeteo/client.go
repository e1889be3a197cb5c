package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/George-20m/Sip-Match2/internal/datasources"
	"github.com/George-20m/Sip-Match2/internal/datasources/cache"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

var _ datasources.WeatherSource = (*Client)(nil)

const defaultBaseURL = "https://api.open-meteo.com"

// Client reports current weather from the Open-Meteo forecast API.
// Lookups are cached per rounded coordinate so repeated requests from the
// same place stay fresh without hammering the API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      cache.Cache
	cacheTTL   time.Duration
}

func NewClient(c cache.Cache, cacheTTL time.Duration) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      c,
		cacheTTL:   cacheTTL,
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(baseURL string, c cache.Cache, cacheTTL time.Duration) *Client {
	client := NewClient(c, cacheTTL)
	client.baseURL = baseURL
	return client
}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
}

func (c *Client) CurrentWeather(
	ctx context.Context,
	latitude, longitude float64,
) (domain.Weather, error) {
	cacheKey := fmt.Sprintf("weather:%.2f:%.2f", latitude, longitude)

	if cached, found, err := c.cache.Get(ctx, cacheKey); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "weather cache read failed", "error", err)
	} else if found {
		var weather domain.Weather
		if err := json.Unmarshal(cached, &weather); err == nil {
			return weather, nil
		}
	}

	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%f", latitude))
	query.Set("longitude", fmt.Sprintf("%f", longitude))
	query.Set("current", "temperature_2m,weather_code")
	query.Set("timezone", "auto")

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+"/v1/forecast?"+query.Encode(),
		nil,
	)
	if err != nil {
		return domain.Weather{}, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return domain.Weather{}, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return domain.Weather{}, fmt.Errorf("weather API error (status %d)", resp.StatusCode)
	}

	var forecast forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return domain.Weather{}, fmt.Errorf("decoding response: %w", err)
	}

	weather := domain.Weather{
		Temperature: int(math.Round(forecast.Current.Temperature)),
		Condition:   domain.ConditionFromCode(forecast.Current.WeatherCode),
	}

	if encoded, err := json.Marshal(weather); err == nil {
		if err := c.cache.Set(ctx, cacheKey, encoded, c.cacheTTL); err != nil {
			logger := domain.LoggerFromContext(ctx)
			logger.WarnContext(ctx, "weather cache write failed", "error", err)
		}
	}

	return weather, nil
}
