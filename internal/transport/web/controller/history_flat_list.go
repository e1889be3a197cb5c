package controller

import (
	"net/http"

	"github.com/George-20m/Sip-Match2/internal/command"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

type HistoryFlatList struct {
	ListCmd command.Command[string, []domain.InteractionWithDrink]
}

type HistoryFlatListResponse struct {
	Data []domain.InteractionWithDrink `json:"data"`
}

func (c HistoryFlatList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := domain.UserIDFromContext(ctx)

	records, err := c.ListCmd.Execute(ctx, userID)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to load interaction history", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if records == nil {
		records = []domain.InteractionWithDrink{}
	}
	writeJSON(w, r, http.StatusOK, HistoryFlatListResponse{Data: records})
}
