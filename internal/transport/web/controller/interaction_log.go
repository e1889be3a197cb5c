package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/George-20m/Sip-Match2/internal/command"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

type InteractionLog struct {
	LogCmd command.Command[command.LogInteractionRequest, command.LogInteractionResponse]
}

type InteractionLogRequestBody struct {
	DrinkID string                 `json:"drink_id"`
	Type    domain.InteractionType `json:"type"`
	Context domain.ContextSnapshot `json:"context"`
	Rating  *int                   `json:"rating"`
}

func (c InteractionLog) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body InteractionLogRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.DrinkID == "" {
		writeMessage(w, r, http.StatusBadRequest, "drink_id is required")
		return
	}
	if !domain.ValidInteractionType(body.Type) {
		writeMessage(w, r, http.StatusBadRequest, fmt.Sprintf("unknown interaction type [%s]", body.Type))
		return
	}

	ctx := r.Context()
	resp, err := c.LogCmd.Execute(ctx, command.LogInteractionRequest{
		UserID:  domain.UserIDFromContext(ctx),
		DrinkID: body.DrinkID,
		Type:    body.Type,
		Context: body.Context,
		Rating:  body.Rating,
	})
	if err != nil {
		if body.Rating != nil && (*body.Rating < 1 || *body.Rating > 5) {
			writeMessage(w, r, http.StatusBadRequest, err.Error())
			return
		}

		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to save interaction", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusCreated, resp)
}
