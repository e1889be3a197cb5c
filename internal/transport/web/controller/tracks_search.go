package controller

import (
	"net/http"
	"strconv"

	"github.com/George-20m/Sip-Match2/internal/datasources"
	"github.com/George-20m/Sip-Match2/internal/datasources/spotify"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

const (
	defaultTrackLimit = 10
	maxTrackLimit     = 50
)

// TracksSearch searches songs by free query or by mood. A mood maps to a
// fixed search query; unknown moods fall back to a generic one.
type TracksSearch struct {
	Searcher datasources.TrackSearcher
}

type TracksSearchResponse struct {
	Data []domain.Track `json:"data"`
}

func (c TracksSearch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		if mood := r.URL.Query().Get("mood"); mood != "" {
			query = spotify.MoodQuery(mood)
		}
	}
	if query == "" {
		writeMessage(w, r, http.StatusBadRequest, "q or mood is required")
		return
	}

	limit := defaultTrackLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxTrackLimit {
			writeMessage(w, r, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	tracks, err := c.Searcher.SearchTracks(r.Context(), query, limit)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "track search failed", "error", err)

		writeMessage(w, r, http.StatusBadGateway, "track search unavailable")
		return
	}

	if tracks == nil {
		tracks = []domain.Track{}
	}
	writeJSON(w, r, http.StatusOK, TracksSearchResponse{Data: tracks})
}
