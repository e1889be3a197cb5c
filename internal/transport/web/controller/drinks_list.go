package controller

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/George-20m/Sip-Match2/internal/datasources"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

type DrinksList struct {
	Lister      datasources.DrinkLister
	CacheMaxAge time.Duration
}

type DrinksListResponse struct {
	Data []domain.Drink `json:"data"`
}

func (c DrinksList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filters, err := drinkFiltersFromQuery(r.URL.Query())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse drink filters in query string", "error", err)

		writeMessage(w, r, http.StatusBadRequest, err.Error())
		return
	}

	drinks, err := c.Lister.ListDrinks(r.Context(), filters)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to list drinks", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if domain.UserIDFromContext(r.Context()) == "" {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	}
	writeJSON(w, r, http.StatusOK, DrinksListResponse{Data: drinks})
}

func drinkFiltersFromQuery(query url.Values) (domain.DrinkFilters, error) {
	filters := domain.DrinkFilters{
		Category:      query.Get("category"),
		Temperature:   query.Get("temperature"),
		CaffeineLevel: query.Get("caffeine_level"),
		NameSearch:    query.Get("search"),
	}

	if filters.Temperature != "" {
		switch domain.DrinkTemperature(filters.Temperature) {
		case domain.DrinkTemperatureHot, domain.DrinkTemperatureCold,
			domain.DrinkTemperatureFrozen, domain.DrinkTemperatureAny:
		default:
			return domain.DrinkFilters{}, fmt.Errorf("invalid temperature [%s]", filters.Temperature)
		}
	}

	if filters.CaffeineLevel != "" {
		switch domain.CaffeineLevel(filters.CaffeineLevel) {
		case domain.CaffeineLevelNone, domain.CaffeineLevelLow,
			domain.CaffeineLevelMedium, domain.CaffeineLevelHigh:
		default:
			return domain.DrinkFilters{}, fmt.Errorf("invalid caffeine level [%s]", filters.CaffeineLevel)
		}
	}

	if vegan := query.Get("vegan"); vegan != "" {
		veganOnly, err := strconv.ParseBool(vegan)
		if err != nil {
			return domain.DrinkFilters{}, fmt.Errorf("invalid vegan value [%s]", vegan)
		}
		filters.VeganOnly = veganOnly
	}

	return filters, nil
}
