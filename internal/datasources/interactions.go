package datasources

import (
	"context"

	"github.com/George-20m/Sip-Match2/internal/domain"
)

// InteractionStore combines all interaction record interfaces.
type InteractionStore interface {
	InteractionCreator
	InteractionDeleter
	UserInteractionLister
	FavoriteFinder
	FavoriteLister
	RatingUpdater
}

type InteractionCreator interface {
	CreateInteraction(ctx context.Context, rec domain.InteractionRecord) (string, error)
}

type InteractionDeleter interface {
	DeleteInteraction(ctx context.Context, id string) error
}

// UserInteractionLister returns a user's records ordered by timestamp
// descending.
type UserInteractionLister interface {
	ListUserInteractions(ctx context.Context, userID string) ([]domain.InteractionRecord, error)
}

// FavoriteFinder returns the favorited-type record for a (user, drink) pair,
// or nil when none exists.
type FavoriteFinder interface {
	FindFavorite(ctx context.Context, userID, drinkID string) (*domain.InteractionRecord, error)
}

type FavoriteLister interface {
	ListFavorites(ctx context.Context, userID string) ([]domain.InteractionRecord, error)
}

// RatingUpdater changes only the rating of an existing record. It returns
// domain.ErrNotFound when the record does not exist.
type RatingUpdater interface {
	UpdateRating(ctx context.Context, id string, rating int) error
}
