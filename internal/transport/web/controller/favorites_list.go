package controller

import (
	"net/http"

	"github.com/George-20m/Sip-Match2/internal/command"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

type FavoritesList struct {
	ListCmd command.Command[string, []domain.InteractionWithDrink]
}

type FavoritesListResponse struct {
	Data []domain.InteractionWithDrink `json:"data"`
}

func (c FavoritesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := domain.UserIDFromContext(ctx)

	favorites, err := c.ListCmd.Execute(ctx, userID)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to load favorites", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if favorites == nil {
		favorites = []domain.InteractionWithDrink{}
	}
	writeJSON(w, r, http.StatusOK, FavoritesListResponse{Data: favorites})
}
