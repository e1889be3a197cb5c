package command

import (
	"context"
	"fmt"

	"github.com/George-20m/Sip-Match2/internal/datasources"
)

// FavoriteStatusesRequest asks for the favorite state of several drinks at
// once, typically to decorate a listing screen in a single round trip.
type FavoriteStatusesRequest struct {
	UserID   string
	DrinkIDs []string
}

// FavoriteStatusesResponse maps each requested drink ID to its state.
// Every requested ID appears in the map, favorited or not.
type FavoriteStatusesResponse struct {
	Statuses map[string]bool `json:"statuses"`
}

// FavoriteStatuses resolves favorite state in bulk from one favorites read
// instead of one lookup per drink.
type FavoriteStatuses struct {
	Favorites datasources.FavoriteLister
}

// NewFavoriteStatuses creates a properly initialized FavoriteStatuses command.
func NewFavoriteStatuses(favorites datasources.FavoriteLister) *FavoriteStatuses {
	return &FavoriteStatuses{Favorites: favorites}
}

func (c *FavoriteStatuses) Execute(
	ctx context.Context,
	req FavoriteStatusesRequest,
) (FavoriteStatusesResponse, error) {
	records, err := c.Favorites.ListFavorites(ctx, req.UserID)
	if err != nil {
		return FavoriteStatusesResponse{}, fmt.Errorf("listing favorites: %w", err)
	}

	favorited := make(map[string]struct{}, len(records))
	for _, rec := range records {
		favorited[rec.DrinkID] = struct{}{}
	}

	statuses := make(map[string]bool, len(req.DrinkIDs))
	for _, id := range req.DrinkIDs {
		_, ok := favorited[id]
		statuses[id] = ok
	}

	return FavoriteStatusesResponse{Statuses: statuses}, nil
}
