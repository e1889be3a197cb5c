package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/George-20m/Sip-Match2/internal/domain"
)

type fakeTrackSearcher struct {
	tracks  []domain.Track
	err     error
	queries []string
	limits  []int
}

func (f *fakeTrackSearcher) SearchTracks(_ context.Context, query string, limit int) ([]domain.Track, error) {
	f.queries = append(f.queries, query)
	f.limits = append(f.limits, limit)
	return f.tracks, f.err
}

func TestTracksSearch_ServeHTTP(t *testing.T) {
	searcher := &fakeTrackSearcher{tracks: []domain.Track{{ID: "t1", Name: "Blinding Lights"}}}
	controller := TracksSearch{Searcher: searcher}

	req := testContext()(httptest.NewRequest(http.MethodGet, "/v1/tracks?q=blinding+lights", nil))
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, searcher.queries, 1)
	assert.Equal(t, "blinding lights", searcher.queries[0])
	assert.Equal(t, defaultTrackLimit, searcher.limits[0])

	var resp TracksSearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data, 1)
}

func TestTracksSearch_ServeHTTP_MoodQuery(t *testing.T) {
	searcher := &fakeTrackSearcher{}
	controller := TracksSearch{Searcher: searcher}

	req := testContext()(httptest.NewRequest(http.MethodGet, "/v1/tracks?mood=happy&limit=5", nil))
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, searcher.queries, 1)
	assert.Equal(t, "happy upbeat pop", searcher.queries[0])
	assert.Equal(t, 5, searcher.limits[0])
}

func TestTracksSearch_ServeHTTP_BadRequests(t *testing.T) {
	controller := TracksSearch{Searcher: &fakeTrackSearcher{}}

	for _, target := range []string{"/v1/tracks", "/v1/tracks?q=x&limit=0", "/v1/tracks?q=x&limit=abc"} {
		req := testContext()(httptest.NewRequest(http.MethodGet, target, nil))
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}
}

func TestTracksSearch_ServeHTTP_UpstreamError(t *testing.T) {
	controller := TracksSearch{Searcher: &fakeTrackSearcher{err: errors.New("spotify down")}}

	req := testContext()(httptest.NewRequest(http.MethodGet, "/v1/tracks?q=x", nil))
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
