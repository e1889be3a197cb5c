package datasources

import (
	"context"

	"github.com/George-20m/Sip-Match2/internal/domain"
)

// WeatherSource reports current weather at a coordinate. Results must be
// fresh per recommendation request, not cached indefinitely.
type WeatherSource interface {
	CurrentWeather(ctx context.Context, latitude, longitude float64) (domain.Weather, error)
}

// NullWeatherSource is a null implementation of WeatherSource. It reports the
// client's fallback weather, matching its behavior when the lookup fails.
type NullWeatherSource struct{}

var _ WeatherSource = NullWeatherSource{}

func (NullWeatherSource) CurrentWeather(_ context.Context, _, _ float64) (domain.Weather, error) {
	return domain.Weather{Temperature: 28, Condition: domain.ConditionClear}, nil
}
