package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/George-20m/Sip-Match2/internal/datasources"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

type DrinkGet struct {
	Fetcher     datasources.DrinkFetcher
	CacheMaxAge time.Duration
}

func (c DrinkGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["drink_id"]

	drinks, err := c.Fetcher.FetchDrinksByID(r.Context(), []string{id})
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch drink", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	drink, ok := drinks[id]
	if !ok {
		writeMessage(w, r, http.StatusNotFound, "drink not found")
		return
	}

	if domain.UserIDFromContext(r.Context()) == "" {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	}
	writeJSON(w, r, http.StatusOK, drink)
}
