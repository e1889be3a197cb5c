package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/George-20m/Sip-Match2/internal/command"
	"github.com/George-20m/Sip-Match2/internal/datasources"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

type Recommend struct {
	Users        datasources.UserByExternalIDGetter
	RecommendCmd command.Command[command.RecommendDrinksRequest, command.RecommendDrinksResponse]
}

type RecommendRequestBody struct {
	Mood     string          `json:"mood"`
	Song     *SongBody       `json:"song"`
	Location domain.Location `json:"location"`
}

type SongBody struct {
	Title   string   `json:"title"`
	Artists []string `json:"artists"`
}

type RecommendResponse struct {
	Recommendations []command.RecommendedDrink `json:"recommendations"`
	Context         domain.ScoringContext      `json:"context"`
}

func (c Recommend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body RecommendRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	req := command.RecommendDrinksRequest{
		UserID:   domain.UserIDOrGuest(ctx),
		Email:    domain.GuestEmail,
		Mood:     body.Mood,
		Location: body.Location,
	}
	if body.Song != nil {
		req.Song = &command.SongSelection{Title: body.Song.Title, Artists: body.Song.Artists}
	}

	// An authenticated request carries the mirrored profile's email when the
	// mirror resolves; the scorer treats it as an opaque label either way.
	if userID := domain.UserIDFromContext(ctx); userID != "" {
		user, err := c.Users.GetUserByExternalID(ctx, userID)
		if err == nil {
			req.Email = user.Email
		} else if !errors.Is(err, domain.ErrNotFound) {
			logger.WarnContext(ctx, "unable to resolve user profile for scoring", "error", err)
		}
	}

	resp, err := c.RecommendCmd.Execute(ctx, req)
	if err != nil {
		if errors.Is(err, domain.ErrMoodRequired) {
			writeMessage(w, r, http.StatusBadRequest, "mood is required")
			return
		}

		logger.ErrorContext(ctx, "recommendation request failed", "error", err)
		writeMessage(w, r, http.StatusBadGateway, "recommendation service unavailable")
		return
	}

	writeJSON(w, r, http.StatusOK, RecommendResponse{
		Recommendations: resp.Drinks,
		Context:         resp.Context,
	})
}
