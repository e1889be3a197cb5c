package command

import (
	"context"
	"fmt"

	"github.com/George-20m/Sip-Match2/internal/datasources"
)

// FavoriteStatusRequest is the request for the FavoriteStatus command.
type FavoriteStatusRequest struct {
	UserID  string
	DrinkID string
}

// FavoriteStatusResponse reports whether the drink is currently favorited.
type FavoriteStatusResponse struct {
	Favorited bool `json:"favorited"`
}

// FavoriteStatus reads the favorite state for a single (user, drink) pair.
type FavoriteStatus struct {
	Finder datasources.FavoriteFinder
}

// NewFavoriteStatus creates a properly initialized FavoriteStatus command.
func NewFavoriteStatus(finder datasources.FavoriteFinder) *FavoriteStatus {
	return &FavoriteStatus{Finder: finder}
}

func (c *FavoriteStatus) Execute(
	ctx context.Context,
	req FavoriteStatusRequest,
) (FavoriteStatusResponse, error) {
	existing, err := c.Finder.FindFavorite(ctx, req.UserID, req.DrinkID)
	if err != nil {
		return FavoriteStatusResponse{}, fmt.Errorf("checking favorite status: %w", err)
	}

	return FavoriteStatusResponse{Favorited: existing != nil}, nil
}
