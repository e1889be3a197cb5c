package command

import (
	"context"
	"fmt"
	"time"

	"github.com/George-20m/Sip-Match2/internal/datasources"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

// ToggleFavoriteRequest is the request for the ToggleFavorite command.
type ToggleFavoriteRequest struct {
	UserID  string
	DrinkID string
}

// ToggleFavoriteResponse reports the favorite state after the toggle.
type ToggleFavoriteResponse struct {
	Favorited bool `json:"favorited"`
}

// ToggleFavorite flips favorite status for a (user, drink) pair, modeled as
// presence of a favorited-type record with an empty context snapshot.
// This is a single read-then-write; a concurrent toggle from another device
// can race it, which the store's per-record atomicity tolerates.
type ToggleFavorite struct {
	Finder  datasources.FavoriteFinder
	Creator datasources.InteractionCreator
	Deleter datasources.InteractionDeleter

	now func() time.Time
}

// NewToggleFavorite creates a properly initialized ToggleFavorite command.
func NewToggleFavorite(
	finder datasources.FavoriteFinder,
	creator datasources.InteractionCreator,
	deleter datasources.InteractionDeleter,
) *ToggleFavorite {
	return &ToggleFavorite{
		Finder:  finder,
		Creator: creator,
		Deleter: deleter,
		now:     time.Now,
	}
}

// Execute flips the current favorite state and returns the new state.
func (c *ToggleFavorite) Execute(
	ctx context.Context,
	req ToggleFavoriteRequest,
) (ToggleFavoriteResponse, error) {
	existing, err := c.Finder.FindFavorite(ctx, req.UserID, req.DrinkID)
	if err != nil {
		return ToggleFavoriteResponse{}, fmt.Errorf("checking favorite status: %w", err)
	}

	if existing != nil {
		// Favorite records are deleted on un-favorite, not marked false.
		if err := c.Deleter.DeleteInteraction(ctx, existing.ID); err != nil {
			return ToggleFavoriteResponse{}, fmt.Errorf("removing favorite: %w", err)
		}
		return ToggleFavoriteResponse{Favorited: false}, nil
	}

	_, err = c.Creator.CreateInteraction(ctx, domain.InteractionRecord{
		UserID:    req.UserID,
		DrinkID:   req.DrinkID,
		Context:   domain.ContextSnapshot{},
		Type:      domain.InteractionFavorited,
		Timestamp: c.now().UnixMilli(),
	})
	if err != nil {
		return ToggleFavoriteResponse{}, fmt.Errorf("adding favorite: %w", err)
	}

	return ToggleFavoriteResponse{Favorited: true}, nil
}
