package domain

import "errors"

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("not found")

// ErrMoodRequired is returned when a recommendation request carries no mood.
// It is a validation failure and must surface before any network call.
var ErrMoodRequired = errors.New("mood is required")

// ErrNoRecommendations is returned when the scoring service responds
// successfully but ranks zero drinks.
var ErrNoRecommendations = errors.New("no recommendations available")
