package command

import (
	"context"
	"fmt"

	"github.com/George-20m/Sip-Match2/internal/datasources"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

// ListFavorites returns a user's favorited drinks. Unlike the history read,
// records whose drink no longer resolves are dropped: a favorite of a
// vanished drink is not actionable.
type ListFavorites struct {
	Favorites datasources.FavoriteLister
	Catalog   datasources.DrinkFetcher
}

// NewListFavorites creates a properly initialized ListFavorites command.
func NewListFavorites(
	favorites datasources.FavoriteLister,
	catalog datasources.DrinkFetcher,
) *ListFavorites {
	return &ListFavorites{Favorites: favorites, Catalog: catalog}
}

func (c *ListFavorites) Execute(ctx context.Context, userID string) ([]domain.InteractionWithDrink, error) {
	records, err := c.Favorites.ListFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}

	ids := make([]string, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.DrinkID)
	}

	drinks, err := c.Catalog.FetchDrinksByID(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching drinks for favorites: %w", err)
	}

	favorites := make([]domain.InteractionWithDrink, 0, len(records))
	for _, rec := range records {
		drink, ok := drinks[rec.DrinkID]
		if !ok {
			continue
		}
		favorites = append(favorites, domain.InteractionWithDrink{
			InteractionRecord: rec,
			Drink:             &drink,
		})
	}

	return favorites, nil
}
