package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/George-20m/Sip-Match2/internal/command"
)

func TestFavoriteToggle_ServeHTTP(t *testing.T) {
	cmd := &fakeCommand[command.ToggleFavoriteRequest, command.ToggleFavoriteResponse]{
		res: command.ToggleFavoriteResponse{Favorited: true},
	}
	controller := FavoriteToggle{ToggleCmd: cmd}

	req := httptest.NewRequest(http.MethodPost, "/v1/drinks/d1/favorite", nil)
	req = testContextWithUserID("auth0|u1")(req)
	req = mux.SetURLVars(req, map[string]string{"drink_id": "d1"})
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, cmd.calls, 1)
	assert.Equal(t, command.ToggleFavoriteRequest{UserID: "auth0|u1", DrinkID: "d1"}, cmd.calls[0])

	var resp command.ToggleFavoriteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Favorited)
}

func TestFavoriteToggle_ServeHTTP_StoreError(t *testing.T) {
	cmd := &fakeCommand[command.ToggleFavoriteRequest, command.ToggleFavoriteResponse]{
		err: errors.New("database error"),
	}
	controller := FavoriteToggle{ToggleCmd: cmd}

	req := httptest.NewRequest(http.MethodPost, "/v1/drinks/d1/favorite", nil)
	req = testContextWithUserID("auth0|u1")(req)
	req = mux.SetURLVars(req, map[string]string{"drink_id": "d1"})
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestFavoriteStatuses_ServeHTTP(t *testing.T) {
	cmd := &fakeCommand[command.FavoriteStatusesRequest, command.FavoriteStatusesResponse]{
		res: command.FavoriteStatusesResponse{Statuses: map[string]bool{"d1": true, "d2": false}},
	}
	controller := FavoriteStatuses{StatusesCmd: cmd}

	body := `{"drink_ids":["d1","d2"]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/favorites/statuses", jsonReader(body))
	req = testContextWithUserID("auth0|u1")(req)
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, cmd.calls, 1)
	assert.Equal(t, []string{"d1", "d2"}, cmd.calls[0].DrinkIDs)

	var resp command.FavoriteStatusesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, map[string]bool{"d1": true, "d2": false}, resp.Statuses)
}
