package controller

import (
	"encoding/json"
	"net/http"

	"github.com/George-20m/Sip-Match2/internal/command"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

type FavoriteStatuses struct {
	StatusesCmd command.Command[command.FavoriteStatusesRequest, command.FavoriteStatusesResponse]
}

type FavoriteStatusesRequestBody struct {
	DrinkIDs []string `json:"drink_ids"`
}

func (c FavoriteStatuses) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body FavoriteStatusesRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := r.Context()
	resp, err := c.StatusesCmd.Execute(ctx, command.FavoriteStatusesRequest{
		UserID:   domain.UserIDFromContext(ctx),
		DrinkIDs: body.DrinkIDs,
	})
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to check favorite statuses", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, resp)
}
