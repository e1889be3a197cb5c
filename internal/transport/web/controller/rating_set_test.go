package controller

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/George-20m/Sip-Match2/internal/command"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

func TestRatingSet_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		cmdErr     error
		wantStatus int
	}{
		{
			name:       "successful_update",
			body:       `{"rating":4}`,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "missing_interaction",
			body:       `{"rating":4}`,
			cmdErr:     fmt.Errorf("updating rating: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "out_of_range",
			body:       `{"rating":9}`,
			cmdErr:     fmt.Errorf("rating must be between 1 and 5, got 9"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed_body",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := &fakeCommand[command.SetRatingRequest, command.Empty]{err: tc.cmdErr}
			controller := RatingSet{SetRatingCmd: cmd}

			req := httptest.NewRequest(http.MethodPost, "/v1/interactions/r1/rating", jsonReader(tc.body))
			req = testContextWithUserID("auth0|u1")(req)
			req = mux.SetURLVars(req, map[string]string{"interaction_id": "r1"})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusNoContent {
				require.Len(t, cmd.calls, 1)
				assert.Equal(t, command.SetRatingRequest{InteractionID: "r1", Rating: 4}, cmd.calls[0])
			}
		})
	}
}
