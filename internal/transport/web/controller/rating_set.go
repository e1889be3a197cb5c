package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/George-20m/Sip-Match2/internal/command"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

type RatingSet struct {
	SetRatingCmd command.Command[command.SetRatingRequest, command.Empty]
}

type RatingSetRequestBody struct {
	Rating int `json:"rating"`
}

func (c RatingSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	interactionID := vars["interaction_id"]

	var body RatingSetRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := r.Context()
	_, err := c.SetRatingCmd.Execute(ctx, command.SetRatingRequest{
		InteractionID: interactionID,
		Rating:        body.Rating,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeMessage(w, r, http.StatusNotFound, "interaction not found")
			return
		}
		if body.Rating < 1 || body.Rating > 5 {
			writeMessage(w, r, http.StatusBadRequest, err.Error())
			return
		}

		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to set rating", "interaction_id", interactionID, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
