package datasources

import (
	"context"

	"github.com/George-20m/Sip-Match2/internal/domain"
)

// DrinkCatalog combines all catalog read interfaces. The catalog is
// read-only from this service.
type DrinkCatalog interface {
	DrinkLister
	DrinkFetcher
	DrinkByNameFetcher
}

type DrinkLister interface {
	ListDrinks(ctx context.Context, filters domain.DrinkFilters) ([]domain.Drink, error)
}

// DrinkFetcher resolves catalog drinks by ID. IDs that no longer resolve are
// absent from the returned map, not errors.
type DrinkFetcher interface {
	FetchDrinksByID(ctx context.Context, ids []string) (map[string]domain.Drink, error)
}

// DrinkByNameFetcher resolves catalog drinks by exact name, keyed by name.
// Used to map scored drinks back onto the catalog.
type DrinkByNameFetcher interface {
	FetchDrinksByName(ctx context.Context, names []string) (map[string]domain.Drink, error)
}
