package spotify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchBody = `{
	"tracks": {
		"items": [
			{
				"id": "t1",
				"name": "Blinding Lights",
				"artists": [{"name": "The Weeknd"}],
				"album": {
					"name": "After Hours",
					"images": [{"url": "https://img.example.com/cover.jpg"}]
				},
				"preview_url": "https://p.example.com/t1.mp3",
				"duration_ms": 200040
			}
		]
	}
}`

func stubServers(t *testing.T) (*Client, *int, *int) {
	t.Helper()

	tokenCalls := new(int)
	accounts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*tokenCalls++
		require.Equal(t, "/api/token", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		require.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))

		_, _ = w.Write([]byte(`{"access_token":"tok-1","expires_in":3600}`))
	}))
	t.Cleanup(accounts.Close)

	searchCalls := new(int)
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*searchCalls++
		require.Equal(t, "/v1/search", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		require.Equal(t, "track", r.URL.Query().Get("type"))

		_, _ = w.Write([]byte(searchBody))
	}))
	t.Cleanup(api.Close)

	return NewClientWithBaseURLs("id", "secret", accounts.URL, api.URL), tokenCalls, searchCalls
}

func TestClient_SearchTracks(t *testing.T) {
	client, _, _ := stubServers(t)

	tracks, err := client.SearchTracks(context.Background(), "blinding lights", 10)
	require.NoError(t, err)

	require.Len(t, tracks, 1)
	track := tracks[0]
	assert.Equal(t, "t1", track.ID)
	assert.Equal(t, "Blinding Lights", track.Name)
	assert.Equal(t, []string{"The Weeknd"}, track.Artists)
	assert.Equal(t, "After Hours", track.Album)
	assert.Equal(t, "https://img.example.com/cover.jpg", track.AlbumImageURL)
	require.NotNil(t, track.PreviewURL)
	assert.Equal(t, 200040, track.DurationMS)
}

func TestClient_SearchTracks_TokenReused(t *testing.T) {
	client, tokenCalls, searchCalls := stubServers(t)

	for i := 0; i < 3; i++ {
		_, err := client.SearchTracks(context.Background(), "q", 5)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, *tokenCalls, "token fetched once and cached on the client")
	assert.Equal(t, 3, *searchCalls)
}

func TestClient_SearchTracks_TokenRefreshedNearExpiry(t *testing.T) {
	client, tokenCalls, _ := stubServers(t)

	current := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	client.now = func() time.Time { return current }

	_, err := client.SearchTracks(context.Background(), "q", 5)
	require.NoError(t, err)

	// Within the expiry margin the cached token no longer counts as valid.
	current = current.Add(3600*time.Second - tokenExpiryMargin + time.Second)
	_, err = client.SearchTracks(context.Background(), "q", 5)
	require.NoError(t, err)

	assert.Equal(t, 2, *tokenCalls)
}

func TestClient_SearchTracks_MissingCredentials(t *testing.T) {
	client := NewClient("", "")

	_, err := client.SearchTracks(context.Background(), "q", 5)
	require.Error(t, err)
}

func TestMoodQuery(t *testing.T) {
	assert.Equal(t, "happy upbeat pop", MoodQuery("happy"))
	assert.Equal(t, "happy upbeat pop", MoodQuery("Happy"))
	assert.Equal(t, "focus study instrumental", MoodQuery("focused"))
	assert.Equal(t, "popular music", MoodQuery("nostalgic"))
}
