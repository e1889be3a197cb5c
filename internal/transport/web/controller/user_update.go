package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/George-20m/Sip-Match2/internal/datasources"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

type UserUpdate struct {
	Users interface {
		datasources.UserProfileUpdater
		datasources.UserByExternalIDGetter
	}
}

// userUpdateRequestBody distinguishes an absent image field from an explicit
// null, which clears the stored image.
type userUpdateRequestBody struct {
	UserName *string         `json:"user_name"`
	Image    json.RawMessage `json:"image"`
}

func (c UserUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body userUpdateRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	update := domain.ProfileUpdate{UserName: body.UserName}
	if len(body.Image) > 0 {
		update.ImageSet = true
		if string(body.Image) != "null" {
			var image string
			if err := json.Unmarshal(body.Image, &image); err != nil {
				writeMessage(w, r, http.StatusBadRequest, "invalid image value")
				return
			}
			update.Image = &image
		}
	}

	ctx := r.Context()
	userID := domain.UserIDFromContext(ctx)

	if err := c.Users.UpdateUserProfile(ctx, userID, update); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeMessage(w, r, http.StatusNotFound, "user profile not synced")
			return
		}

		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to update user profile", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	user, err := c.Users.GetUserByExternalID(ctx, userID)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to load updated user profile", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, user)
}
