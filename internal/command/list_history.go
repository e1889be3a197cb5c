package command

import (
	"context"

	"github.com/George-20m/Sip-Match2/internal/datasources"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

// ListHistory returns a user's interaction records ungrouped, newest first,
// each enriched with its catalog drink where it still resolves.
type ListHistory struct {
	Interactions datasources.UserInteractionLister
	Catalog      datasources.DrinkFetcher
}

// NewListHistory creates a properly initialized ListHistory command.
func NewListHistory(
	interactions datasources.UserInteractionLister,
	catalog datasources.DrinkFetcher,
) *ListHistory {
	return &ListHistory{Interactions: interactions, Catalog: catalog}
}

func (c *ListHistory) Execute(ctx context.Context, userID string) ([]domain.InteractionWithDrink, error) {
	return listEnrichedInteractions(ctx, c.Interactions, c.Catalog, userID)
}
