package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/George-20m/Sip-Match2/internal/command"
	"github.com/George-20m/Sip-Match2/internal/datasources"
	"github.com/George-20m/Sip-Match2/internal/domain"
	"github.com/George-20m/Sip-Match2/internal/transport/web/controller"
)

// Deps carries everything the HTTP surface is wired from.
type Deps struct {
	Catalog datasources.DrinkCatalog
	Users   datasources.UserStore
	Scorer  datasources.Scorer
	Tracks  datasources.TrackSearcher

	RecommendCmd        command.Command[command.RecommendDrinksRequest, command.RecommendDrinksResponse]
	HistoryCmd          command.Command[string, []domain.Session]
	HistoryFlatCmd      command.Command[string, []domain.InteractionWithDrink]
	FavoritesCmd        command.Command[string, []domain.InteractionWithDrink]
	ToggleFavoriteCmd   command.Command[command.ToggleFavoriteRequest, command.ToggleFavoriteResponse]
	FavoriteStatusCmd   command.Command[command.FavoriteStatusRequest, command.FavoriteStatusResponse]
	FavoriteStatusesCmd command.Command[command.FavoriteStatusesRequest, command.FavoriteStatusesResponse]
	LogInteractionCmd   command.Command[command.LogInteractionRequest, command.LogInteractionResponse]
	SetRatingCmd        command.Command[command.SetRatingRequest, command.Empty]
	SyncUserCmd         command.Command[command.SyncUserRequest, command.SyncUserResponse]

	CatalogCacheMaxAge time.Duration
	AuthMiddleware     func(http.Handler) http.Handler
}

func MakeRouter(deps Deps) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(deps.AuthMiddleware)

	r.Handle("/v1/health", controller.Health{
		Scorer: deps.Scorer,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/drinks", controller.DrinksList{
		Lister:      deps.Catalog,
		CacheMaxAge: deps.CatalogCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/drinks/{drink_id}", controller.DrinkGet{
		Fetcher:     deps.Catalog,
		CacheMaxAge: deps.CatalogCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/recommendations", controller.Recommend{
		Users:        deps.Users,
		RecommendCmd: deps.RecommendCmd,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/history", requireAuthMiddleware(controller.HistoryList{
		HistoryCmd: deps.HistoryCmd,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/history/flat", requireAuthMiddleware(controller.HistoryFlatList{
		ListCmd: deps.HistoryFlatCmd,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/favorites", requireAuthMiddleware(controller.FavoritesList{
		ListCmd: deps.FavoritesCmd,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/drinks/{drink_id}/favorite", requireAuthMiddleware(controller.FavoriteToggle{
		ToggleCmd: deps.ToggleFavoriteCmd,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/drinks/{drink_id}/favorite", requireAuthMiddleware(controller.FavoriteStatus{
		StatusCmd: deps.FavoriteStatusCmd,
	})).Methods(http.MethodGet)

	r.Handle("/v1/favorites/statuses", requireAuthMiddleware(controller.FavoriteStatuses{
		StatusesCmd: deps.FavoriteStatusesCmd,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/interactions", requireAuthMiddleware(controller.InteractionLog{
		LogCmd: deps.LogInteractionCmd,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/interactions/{interaction_id}/rating", requireAuthMiddleware(controller.RatingSet{
		SetRatingCmd: deps.SetRatingCmd,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/tracks", controller.TracksSearch{
		Searcher: deps.Tracks,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/users/sync", requireAuthMiddleware(controller.UserSync{
		SyncCmd: deps.SyncUserCmd,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/users/me", requireAuthMiddleware(controller.UserGet{
		Users: deps.Users,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/users/me", requireAuthMiddleware(controller.UserUpdate{
		Users: deps.Users,
	})).Methods(http.MethodPatch)

	r.Handle("/v1/users/me", requireAuthMiddleware(controller.UserDelete{
		Users: deps.Users,
	})).Methods(http.MethodDelete)

	return r, nil
}
