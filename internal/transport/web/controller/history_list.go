package controller

import (
	"net/http"

	"github.com/George-20m/Sip-Match2/internal/command"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

type HistoryList struct {
	HistoryCmd command.Command[string, []domain.Session]
}

type HistoryListResponse struct {
	Sessions []domain.Session `json:"sessions"`
}

func (c HistoryList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := domain.UserIDFromContext(ctx)

	sessions, err := c.HistoryCmd.Execute(ctx, userID)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to load history sessions", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if sessions == nil {
		sessions = []domain.Session{}
	}
	writeJSON(w, r, http.StatusOK, HistoryListResponse{Sessions: sessions})
}
