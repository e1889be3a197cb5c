package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/George-20m/Sip-Match2/internal/domain"
)

type fakeUserProfileStore struct {
	user      domain.User
	getErr    error
	updateErr error
	updates   []domain.ProfileUpdate
}

func (f *fakeUserProfileStore) GetUserByExternalID(_ context.Context, _ string) (domain.User, error) {
	return f.user, f.getErr
}

func (f *fakeUserProfileStore) UpdateUserProfile(_ context.Context, _ string, update domain.ProfileUpdate) error {
	f.updates = append(f.updates, update)
	return f.updateErr
}

func TestUserUpdate_ServeHTTP(t *testing.T) {
	name := "New Name"
	image := "https://cdn.example.com/new.png"

	cases := []struct {
		name       string
		body       string
		wantStatus int
		wantUpdate domain.ProfileUpdate
	}{
		{
			name:       "name_only_leaves_image_alone",
			body:       `{"user_name":"New Name"}`,
			wantStatus: http.StatusOK,
			wantUpdate: domain.ProfileUpdate{UserName: &name},
		},
		{
			name:       "image_set",
			body:       `{"image":"https://cdn.example.com/new.png"}`,
			wantStatus: http.StatusOK,
			wantUpdate: domain.ProfileUpdate{Image: &image, ImageSet: true},
		},
		{
			name:       "explicit_null_clears_image",
			body:       `{"image":null}`,
			wantStatus: http.StatusOK,
			wantUpdate: domain.ProfileUpdate{ImageSet: true},
		},
		{
			name:       "invalid_image_value",
			body:       `{"image":5}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := &fakeUserProfileStore{user: domain.User{ExternalID: "auth0|u1"}}
			controller := UserUpdate{Users: users}

			req := httptest.NewRequest(http.MethodPatch, "/v1/users/me", jsonReader(tc.body))
			req = testContextWithUserID("auth0|u1")(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				require.Len(t, users.updates, 1)
				assert.Equal(t, tc.wantUpdate, users.updates[0])
			} else {
				assert.Empty(t, users.updates)
			}
		})
	}
}

func TestUserUpdate_ServeHTTP_NotSynced(t *testing.T) {
	users := &fakeUserProfileStore{updateErr: domain.ErrNotFound}
	controller := UserUpdate{Users: users}

	req := httptest.NewRequest(http.MethodPatch, "/v1/users/me", jsonReader(`{"user_name":"x"}`))
	req = testContextWithUserID("auth0|u1")(req)
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
