package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/George-20m/Sip-Match2/internal/command"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

type FavoriteToggle struct {
	ToggleCmd command.Command[command.ToggleFavoriteRequest, command.ToggleFavoriteResponse]
}

func (c FavoriteToggle) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	drinkID := vars["drink_id"]

	ctx := r.Context()
	resp, err := c.ToggleCmd.Execute(ctx, command.ToggleFavoriteRequest{
		UserID:  domain.UserIDFromContext(ctx),
		DrinkID: drinkID,
	})
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to toggle favorite", "drink_id", drinkID, "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, resp)
}
