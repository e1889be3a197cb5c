package command

import (
	"context"
	"fmt"

	"github.com/George-20m/Sip-Match2/internal/datasources"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

// GetHistory reads a user's interaction records and groups them into
// time-bucketed sessions for display.
type GetHistory struct {
	Interactions datasources.UserInteractionLister
	Catalog      datasources.DrinkFetcher
}

// NewGetHistory creates a properly initialized GetHistory command.
func NewGetHistory(
	interactions datasources.UserInteractionLister,
	catalog datasources.DrinkFetcher,
) *GetHistory {
	return &GetHistory{Interactions: interactions, Catalog: catalog}
}

// Execute returns the user's sessions, newest bucket first. Records whose
// drink no longer resolves are kept with a nil drink rather than dropped.
func (c *GetHistory) Execute(ctx context.Context, userID string) ([]domain.Session, error) {
	enriched, err := listEnrichedInteractions(ctx, c.Interactions, c.Catalog, userID)
	if err != nil {
		return nil, err
	}

	return domain.GroupSessions(enriched), nil
}

// listEnrichedInteractions fetches a user's records and resolves their
// catalog drinks, leaving Drink nil for records that no longer resolve.
func listEnrichedInteractions(
	ctx context.Context,
	interactions datasources.UserInteractionLister,
	catalog datasources.DrinkFetcher,
	userID string,
) ([]domain.InteractionWithDrink, error) {
	records, err := interactions.ListUserInteractions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing user interactions: %w", err)
	}

	seen := make(map[string]struct{}, len(records))
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		if _, ok := seen[rec.DrinkID]; ok {
			continue
		}
		seen[rec.DrinkID] = struct{}{}
		ids = append(ids, rec.DrinkID)
	}

	drinks, err := catalog.FetchDrinksByID(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching drinks for interactions: %w", err)
	}

	enriched := make([]domain.InteractionWithDrink, 0, len(records))
	for _, rec := range records {
		entry := domain.InteractionWithDrink{InteractionRecord: rec}
		if drink, ok := drinks[rec.DrinkID]; ok {
			entry.Drink = &drink
		}
		enriched = append(enriched, entry)
	}

	return enriched, nil
}
