package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/George-20m/Sip-Match2/internal/command"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

type FavoriteStatus struct {
	StatusCmd command.Command[command.FavoriteStatusRequest, command.FavoriteStatusResponse]
}

func (c FavoriteStatus) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	drinkID := vars["drink_id"]

	ctx := r.Context()
	resp, err := c.StatusCmd.Execute(ctx, command.FavoriteStatusRequest{
		UserID:  domain.UserIDFromContext(ctx),
		DrinkID: drinkID,
	})
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to check favorite status", "drink_id", drinkID, "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, resp)
}
