package command

import (
	"context"
	"fmt"

	"github.com/George-20m/Sip-Match2/internal/datasources"
)

// SetRatingRequest is the request for the SetRating command.
type SetRatingRequest struct {
	InteractionID string
	Rating        int
}

// Ratings are a 1-5 scale.
const minRating, maxRating = 1, 5

// SetRating updates the rating of an existing interaction record. The
// context snapshot stays untouched; the rating is the only mutable field.
type SetRating struct {
	Updater datasources.RatingUpdater
}

// NewSetRating creates a properly initialized SetRating command.
func NewSetRating(updater datasources.RatingUpdater) *SetRating {
	return &SetRating{Updater: updater}
}

// Execute validates and applies the rating. A missing record is a hard
// failure propagated to the caller as domain.ErrNotFound.
func (c *SetRating) Execute(ctx context.Context, req SetRatingRequest) (Empty, error) {
	if req.Rating < minRating || req.Rating > maxRating {
		return Empty{}, fmt.Errorf("rating must be between %d and %d, got %d",
			minRating, maxRating, req.Rating)
	}

	if err := c.Updater.UpdateRating(ctx, req.InteractionID, req.Rating); err != nil {
		return Empty{}, fmt.Errorf("updating rating: %w", err)
	}

	return Empty{}, nil
}
