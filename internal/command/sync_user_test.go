package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSyncUser(identities *fakeIdentityChecker, users *fakeUserStore) *SyncUser {
	cmd := NewSyncUser(identities, users)

	// Keep test runs fast; the production interval only matters for
	// real provider propagation.
	cmd.interval = time.Millisecond
	return cmd
}

func TestSyncUser_Execute(t *testing.T) {
	users := &fakeUserStore{}
	cmd := testSyncUser(&fakeIdentityChecker{existsAfter: 1}, users)

	image := "https://cdn.example.com/u1.png"
	resp, err := cmd.Execute(context.Background(), SyncUserRequest{
		ExternalID:  "auth0|u1",
		Email:       "u1@example.com",
		UserName:    "U One",
		AuthMethod:  "google",
		HasPassword: false,
		Image:       &image,
	})
	require.NoError(t, err)
	assert.True(t, resp.Synced)

	stored, ok := users.users["auth0|u1"]
	require.True(t, ok)
	assert.Equal(t, "u1@example.com", stored.Email)
	assert.Equal(t, "U One", stored.UserName)
	require.NotNil(t, stored.Image)
	assert.Equal(t, image, *stored.Image)
}

func TestSyncUser_Execute_WaitsForPropagation(t *testing.T) {
	identities := &fakeIdentityChecker{existsAfter: 3}
	users := &fakeUserStore{}
	cmd := testSyncUser(identities, users)

	resp, err := cmd.Execute(context.Background(), SyncUserRequest{ExternalID: "auth0|u1"})
	require.NoError(t, err)

	assert.True(t, resp.Synced)
	assert.Equal(t, 3, identities.calls)
}

func TestSyncUser_Execute_SkipsOnExhaustion(t *testing.T) {
	identities := &fakeIdentityChecker{existsAfter: 100}
	users := &fakeUserStore{}
	cmd := testSyncUser(identities, users)

	resp, err := cmd.Execute(context.Background(), SyncUserRequest{ExternalID: "auth0|u1"})

	require.NoError(t, err, "exhaustion is not an error for the caller")
	assert.False(t, resp.Synced)
	assert.Equal(t, 5, identities.calls)
	assert.Empty(t, users.users)
}

func TestSyncUser_Execute_SkipsOnCheckError(t *testing.T) {
	identities := &fakeIdentityChecker{err: errors.New("provider down")}
	users := &fakeUserStore{}
	cmd := testSyncUser(identities, users)

	resp, err := cmd.Execute(context.Background(), SyncUserRequest{ExternalID: "auth0|u1"})

	require.NoError(t, err)
	assert.False(t, resp.Synced)
	assert.Empty(t, users.users)
}

func TestSyncUser_Execute_UpsertFailureIsHard(t *testing.T) {
	users := &fakeUserStore{upsertErr: errors.New("db gone")}
	cmd := testSyncUser(&fakeIdentityChecker{existsAfter: 1}, users)

	_, err := cmd.Execute(context.Background(), SyncUserRequest{ExternalID: "auth0|u1"})
	require.Error(t, err)
}
