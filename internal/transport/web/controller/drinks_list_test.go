package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/George-20m/Sip-Match2/internal/domain"
)

func TestDrinksList_ServeHTTP(t *testing.T) {
	catalog := fakeDrinkCatalog{list: []domain.Drink{
		{ID: "d1", Name: "Iced Latte", Category: "coffee"},
		{ID: "d2", Name: "Green Tea", Category: "tea"},
	}}

	controller := DrinksList{Lister: catalog, CacheMaxAge: time.Hour}

	req := testContext()(httptest.NewRequest(http.MethodGet, "/v1/drinks?category=coffee&vegan=true", nil))
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp DrinksListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Data, 2)
}

func TestDrinksList_ServeHTTP_InvalidFilters(t *testing.T) {
	controller := DrinksList{Lister: fakeDrinkCatalog{}, CacheMaxAge: time.Hour}

	targets := []string{
		"/v1/drinks?vegan=maybe",
		"/v1/drinks?temperature=lukewarm",
		"/v1/drinks?caffeine_level=extreme",
	}
	for _, target := range targets {
		req := testContext()(httptest.NewRequest(http.MethodGet, target, nil))
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}
}

func TestDrinkFiltersFromQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet,
		"/v1/drinks?category=tea&temperature=hot&caffeine_level=low&vegan=1&search=matcha", nil)

	filters, err := drinkFiltersFromQuery(req.URL.Query())
	require.NoError(t, err)

	assert.Equal(t, domain.DrinkFilters{
		Category:      "tea",
		Temperature:   "hot",
		CaffeineLevel: "low",
		VeganOnly:     true,
		NameSearch:    "matcha",
	}, filters)
}
