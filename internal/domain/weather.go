package domain

import (
	"strings"
	"time"
)

// WeatherCondition is the coarse condition derived from a numeric weather code.
type WeatherCondition string

const (
	ConditionClear  WeatherCondition = "Clear"
	ConditionCloudy WeatherCondition = "Cloudy"
	ConditionRain   WeatherCondition = "Rain"
	ConditionSnow   WeatherCondition = "Snow"
	ConditionStorm  WeatherCondition = "Storm"
	ConditionFog    WeatherCondition = "Fog"
)

// Weather is the current weather at the requester's location.
type Weather struct {
	Temperature int              `json:"temperature"` // °C, rounded
	Condition   WeatherCondition `json:"condition"`
}

// ConditionFromCode maps a WMO weather code (as reported by Open-Meteo) to a
// coarse condition. The checks run in this order; later ranges only apply to
// codes not already matched.
func ConditionFromCode(code int) WeatherCondition {
	switch {
	case code >= 61 && code <= 67:
		return ConditionRain
	case code >= 71 && code <= 77:
		return ConditionSnow
	case code >= 80 && code <= 82:
		return ConditionRain
	case code >= 51 && code <= 57:
		return ConditionRain
	case code >= 2 && code <= 3:
		return ConditionCloudy
	case code >= 95:
		return ConditionStorm
	case code >= 45:
		return ConditionFog
	default:
		return ConditionClear
	}
}

// IconName returns the client-side icon slug for the condition.
func (c WeatherCondition) IconName() string {
	switch c {
	case ConditionClear:
		return "weather-sunny"
	case ConditionCloudy:
		return "weather-cloudy"
	case ConditionRain:
		return "weather-rainy"
	case ConditionStorm:
		return "weather-lightning"
	case ConditionSnow:
		return "weather-snowy"
	case ConditionFog:
		return "weather-fog"
	}
	return "weather-partly-cloudy"
}

// ScoringName is the condition as the scoring service expects it: the icon
// slug with its "weather-" prefix stripped.
func (c WeatherCondition) ScoringName() string {
	return strings.TrimPrefix(c.IconName(), "weather-")
}

// TimeOfDay buckets a clock time the same way the scoring service does, so a
// locally derived value stays consistent with the service's context echo.
func TimeOfDay(t time.Time) string {
	switch hour := t.Hour(); {
	case hour >= 5 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 17:
		return "afternoon"
	case hour >= 17 && hour < 21:
		return "evening"
	default:
		return "night"
	}
}
