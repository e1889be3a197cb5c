package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/George-20m/Sip-Match2/internal/command"
	"github.com/George-20m/Sip-Match2/internal/datasources"
	"github.com/George-20m/Sip-Match2/internal/datasources/cache"
	"github.com/George-20m/Sip-Match2/internal/datasources/identity"
	"github.com/George-20m/Sip-Match2/internal/datasources/mysql"
	"github.com/George-20m/Sip-Match2/internal/datasources/openmeteo"
	"github.com/George-20m/Sip-Match2/internal/datasources/scoring"
	"github.com/George-20m/Sip-Match2/internal/datasources/spotify"
	"github.com/George-20m/Sip-Match2/internal/transport/web/router"
	"github.com/George-20m/Sip-Match2/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	repo, err := setupRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up repository: %w", err)
	}

	weatherCache, err := setupCache(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up cache: %w", err)
	}

	weather, err := setupWeatherSource(ctx, weatherCache)
	if err != nil {
		return nil, fmt.Errorf("setting up weather source: %w", err)
	}

	scorer := scoring.NewClient(MustGetEnvAsString(ctx, "SCORING_BASE_URL"))

	tracks, err := setupTrackSearcher(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up track searcher: %w", err)
	}

	identities, err := setupIdentityChecker(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up identity checker: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	httpRouter, err := router.MakeRouter(router.Deps{
		Catalog: repo,
		Users:   repo,
		Scorer:  scorer,
		Tracks:  tracks,

		RecommendCmd:        command.NewRecommendDrinks(weather, scorer, repo, repo),
		HistoryCmd:          command.NewGetHistory(repo, repo),
		HistoryFlatCmd:      command.NewListHistory(repo, repo),
		FavoritesCmd:        command.NewListFavorites(repo, repo),
		ToggleFavoriteCmd:   command.NewToggleFavorite(repo, repo, repo),
		FavoriteStatusCmd:   command.NewFavoriteStatus(repo),
		FavoriteStatusesCmd: command.NewFavoriteStatuses(repo),
		LogInteractionCmd:   command.NewLogInteraction(repo),
		SetRatingCmd:        command.NewSetRating(repo),
		SyncUserCmd:         command.NewSyncUser(identities, repo),

		CatalogCacheMaxAge: MustGetEnvAsDuration(ctx, "CATALOG_CACHE_MAX_AGE"),
		AuthMiddleware:     authMiddleware,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:      MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:  MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostname: MustGetEnvAsString(ctx, "HTTP_AUTOCERT_HOSTNAME"),
			Router:           httpRouter,
		},
	}, nil
}

func setupRepository(ctx context.Context) (*mysql.Repository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return mysql.New(db), nil
}

func setupCache(ctx context.Context) (cache.Cache, error) {
	switch driver := MustGetEnvAsString(ctx, "CACHE_DRIVER"); driver {
	case "null":
		return cache.Null{}, nil
	case "redis":
		c, err := cache.NewRedis(
			ctx,
			MustGetEnvAsString(ctx, "REDIS_ADDR"),
			MustGetEnvAsString(ctx, "REDIS_PASSWORD"),
			MustGetEnvAsInt(ctx, "REDIS_DB"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown cache driver [%s]", driver)
	}
}

func setupWeatherSource(ctx context.Context, weatherCache cache.Cache) (datasources.WeatherSource, error) {
	switch driver := MustGetEnvAsString(ctx, "WEATHER_DRIVER"); driver {
	case "null":
		return datasources.NullWeatherSource{}, nil
	case "openmeteo":
		return openmeteo.NewClient(weatherCache, MustGetEnvAsDuration(ctx, "WEATHER_CACHE_TTL")), nil
	default:
		return nil, fmt.Errorf("unknown weather driver [%s]", driver)
	}
}

func setupTrackSearcher(ctx context.Context) (datasources.TrackSearcher, error) {
	switch driver := MustGetEnvAsString(ctx, "TRACKS_DRIVER"); driver {
	case "null":
		return datasources.NullTrackSearcher{}, nil
	case "spotify":
		return spotify.NewClient(
			MustGetEnvAsString(ctx, "SPOTIFY_CLIENT_ID"),
			MustGetEnvAsString(ctx, "SPOTIFY_CLIENT_SECRET"),
		), nil
	default:
		return nil, fmt.Errorf("unknown tracks driver [%s]", driver)
	}
}

func setupIdentityChecker(ctx context.Context) (datasources.IdentityChecker, error) {
	switch driver := MustGetEnvAsString(ctx, "IDENTITY_DRIVER"); driver {
	case "null":
		return datasources.NullIdentityChecker{}, nil
	case "http":
		return identity.NewClient(
			MustGetEnvAsString(ctx, "IDENTITY_BASE_URL"),
			MustGetEnvAsString(ctx, "IDENTITY_SECRET_KEY"),
		), nil
	default:
		return nil, fmt.Errorf("unknown identity driver [%s]", driver)
	}
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "jwt":
			v, err := router.NewJWTValidator(
				MustGetEnvAsString(ctx, "AUTH_ISSUER_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating JWT validator: %w", err)
			}
			validators = append(validators, v)
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
