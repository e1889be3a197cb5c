package controller

import (
	"errors"
	"net/http"

	"github.com/George-20m/Sip-Match2/internal/datasources"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

type UserGet struct {
	Users datasources.UserByExternalIDGetter
}

func (c UserGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := domain.UserIDFromContext(ctx)

	user, err := c.Users.GetUserByExternalID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeMessage(w, r, http.StatusNotFound, "user profile not synced")
			return
		}

		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to load user profile", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, user)
}
