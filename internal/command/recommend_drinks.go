package command

import (
	"context"
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/George-20m/Sip-Match2/internal/datasources"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

// SongSelection is the song the user attached to the request, if any.
type SongSelection struct {
	Title   string
	Artists []string
}

// RecommendDrinksRequest is the request for the RecommendDrinks command.
type RecommendDrinksRequest struct {
	UserID   string
	Email    string
	Mood     string
	Song     *SongSelection
	Location domain.Location
}

// RecommendedDrink is a scored drink matched back onto the catalog.
// Drink is nil when the scored name has no catalog counterpart.
type RecommendedDrink struct {
	domain.ScoredDrink
	Drink *domain.Drink `json:"drink"`
}

// RecommendDrinksResponse is the response from the RecommendDrinks command.
type RecommendDrinksResponse struct {
	Drinks  []RecommendedDrink
	Context domain.ScoringContext
}

// RecommendDrinks builds the scoring payload, calls the scoring service and
// persists the resulting interaction batch. Persistence is best-effort: its
// failure never blocks or rolls back results already handed to the caller.
type RecommendDrinks struct {
	Weather      datasources.WeatherSource
	Scorer       datasources.Scorer
	Catalog      datasources.DrinkByNameFetcher
	Interactions datasources.InteractionCreator

	now func() time.Time
}

// NewRecommendDrinks creates a properly initialized RecommendDrinks command.
func NewRecommendDrinks(
	weather datasources.WeatherSource,
	scorer datasources.Scorer,
	catalog datasources.DrinkByNameFetcher,
	interactions datasources.InteractionCreator,
) *RecommendDrinks {
	return &RecommendDrinks{
		Weather:      weather,
		Scorer:       scorer,
		Catalog:      catalog,
		Interactions: interactions,
		now:          time.Now,
	}
}

// Execute runs one recommendation request end to end.
func (c *RecommendDrinks) Execute(
	ctx context.Context,
	req RecommendDrinksRequest,
) (RecommendDrinksResponse, error) {
	// Validation happens before any network call.
	if req.Mood == "" {
		return RecommendDrinksResponse{}, domain.ErrMoodRequired
	}

	weather, err := c.Weather.CurrentWeather(ctx, req.Location.Latitude, req.Location.Longitude)
	if err != nil {
		return RecommendDrinksResponse{}, fmt.Errorf("fetching current weather: %w", err)
	}

	payload := c.buildPayload(req, weather)

	resp, err := c.Scorer.ScoreDrinks(ctx, payload)
	if err != nil {
		return RecommendDrinksResponse{}, fmt.Errorf("calling scoring service: %w", err)
	}
	if !resp.Success {
		return RecommendDrinksResponse{}, fmt.Errorf("scoring service rejected request: %s", resp.Error)
	}
	if len(resp.Recommendations) == 0 {
		return RecommendDrinksResponse{}, domain.ErrNoRecommendations
	}

	logger := domain.LoggerFromContext(ctx)

	drinks := make([]RecommendedDrink, 0, len(resp.Recommendations))
	var matchedIDs []string

	names := make([]string, 0, len(resp.Recommendations))
	for _, scored := range resp.Recommendations {
		names = append(names, scored.Name)
	}

	byName, err := c.Catalog.FetchDrinksByName(ctx, names)
	if err != nil {
		// The recommendations are already in hand; show them without
		// catalog enrichment and skip persisting the batch.
		logger.WarnContext(ctx, "failed to match recommendations to catalog", "error", err)
		byName = nil
	}

	for _, scored := range resp.Recommendations {
		rec := RecommendedDrink{ScoredDrink: scored}
		if drink, ok := byName[scored.Name]; ok {
			rec.Drink = &drink
			matchedIDs = append(matchedIDs, drink.ID)
		}
		drinks = append(drinks, rec)
	}

	if req.UserID != domain.GuestUserID && len(matchedIDs) > 0 {
		timeOfDay := resp.Context.TimeOfDay
		if timeOfDay == "" {
			timeOfDay = domain.TimeOfDay(c.now())
		}
		snapshot := domain.ContextSnapshot{
			Mood:             payload.Mood,
			Temperature:      weather.Temperature,
			WeatherCondition: weather.Condition.ScoringName(),
			TimeOfDay:        timeOfDay,
		}
		go c.saveBatch(context.WithoutCancel(ctx), req.UserID, matchedIDs, snapshot)
	}

	return RecommendDrinksResponse{Drinks: drinks, Context: resp.Context}, nil
}

func (c *RecommendDrinks) buildPayload(
	req RecommendDrinksRequest,
	weather domain.Weather,
) domain.ScoringRequest {
	var song *string
	if req.Song != nil {
		description := domain.SongDescription(req.Song.Title, req.Song.Artists)
		song = &description
	}

	return domain.ScoringRequest{
		UserID:   req.UserID,
		Email:    req.Email,
		Mood:     capitalizeFirst(req.Mood),
		Song:     song,
		Location: req.Location,
		Weather: domain.ScoringWeather{
			Temperature: weather.Temperature,
			Condition:   weather.Condition.ScoringName(),
			Humidity:    nil,
		},
		Timestamp: c.now().UTC().Format(time.RFC3339),
	}
}

// saveBatch writes one viewed record per recommended drink. Records are
// written independently; a failed insert is logged and the rest proceed.
func (c *RecommendDrinks) saveBatch(
	ctx context.Context,
	userID string,
	drinkIDs []string,
	snapshot domain.ContextSnapshot,
) {
	logger := domain.LoggerFromContext(ctx)
	timestamp := c.now().UnixMilli()

	for _, drinkID := range drinkIDs {
		_, err := c.Interactions.CreateInteraction(ctx, domain.InteractionRecord{
			UserID:    userID,
			DrinkID:   drinkID,
			Context:   snapshot,
			Type:      domain.InteractionViewed,
			Timestamp: timestamp,
		})
		if err != nil {
			logger.WarnContext(ctx, "failed to save recommendation record",
				"drink_id", drinkID, "error", err)
		}
	}
}

// capitalizeFirst upper-cases exactly the first rune and leaves the
// remainder unchanged.
func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
