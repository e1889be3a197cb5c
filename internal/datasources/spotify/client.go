package spotify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/George-20m/Sip-Match2/internal/datasources"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

var _ datasources.TrackSearcher = (*Client)(nil)

const (
	accountsBaseURL = "https://accounts.spotify.com"
	apiBaseURL      = "https://api.spotify.com"

	// Tokens are treated as expired this long before their actual expiry.
	tokenExpiryMargin = 5 * time.Minute
)

// moodQueries maps a mood to the search query used for mood-based track
// suggestions.
var moodQueries = map[string]string{
	"happy":     "happy upbeat pop",
	"calm":      "calm relaxing ambient",
	"energetic": "energetic workout pump up",
	"tired":     "chill sleep relaxing",
	"romantic":  "romantic love songs",
	"focused":   "focus study instrumental",
}

const fallbackQuery = "popular music"

// Client searches tracks via the Spotify Web API using the client
// credentials flow. The access token lives on the client and is refreshed
// lazily; there is no shared module-level token state.
type Client struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client

	accountsURL string
	apiURL      string
	now         func() time.Time

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		accountsURL:  accountsBaseURL,
		apiURL:       apiBaseURL,
		now:          time.Now,
	}
}

// NewClientWithBaseURLs is used by tests to point the client at stub servers.
func NewClientWithBaseURLs(clientID, clientSecret, accountsURL, apiURL string) *Client {
	client := NewClient(clientID, clientSecret)
	client.accountsURL = accountsURL
	client.apiURL = apiURL
	return client
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && c.now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	if c.clientID == "" || c.clientSecret == "" {
		return "", fmt.Errorf("spotify credentials are not configured")
	}

	credentials := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.accountsURL+"/api/token",
		strings.NewReader("grant_type=client_credentials"),
	)
	if err != nil {
		return "", fmt.Errorf("creating token request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "Basic "+credentials)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("executing token request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("spotify token error (status %d): %s", resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("no access token received from spotify")
	}

	c.accessToken = token.AccessToken
	c.tokenExpiry = c.now().Add(time.Duration(token.ExpiresIn)*time.Second - tokenExpiryMargin)
	return c.accessToken, nil
}

type searchResponse struct {
	Tracks struct {
		Items []struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			Artists []struct {
				Name string `json:"name"`
			} `json:"artists"`
			Album struct {
				Name   string `json:"name"`
				Images []struct {
					URL string `json:"url"`
				} `json:"images"`
			} `json:"album"`
			PreviewURL *string `json:"preview_url"`
			DurationMS int     `json:"duration_ms"`
		} `json:"items"`
	} `json:"tracks"`
}

func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]domain.Track, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "track")
	params.Set("limit", strconv.Itoa(limit))

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.apiURL+"/v1/search?"+params.Encode(),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing search request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("spotify search error (status %d): %s", resp.StatusCode, string(body))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	tracks := make([]domain.Track, 0, len(result.Tracks.Items))
	for _, item := range result.Tracks.Items {
		track := domain.Track{
			ID:         item.ID,
			Name:       item.Name,
			Album:      item.Album.Name,
			PreviewURL: item.PreviewURL,
			DurationMS: item.DurationMS,
		}
		for _, artist := range item.Artists {
			track.Artists = append(track.Artists, artist.Name)
		}
		if len(item.Album.Images) > 0 {
			track.AlbumImageURL = item.Album.Images[0].URL
		}
		tracks = append(tracks, track)
	}

	return tracks, nil
}

// MoodQuery returns the search query for a mood, falling back to a generic
// query for unknown moods.
func MoodQuery(mood string) string {
	if query, ok := moodQueries[strings.ToLower(mood)]; ok {
		return query
	}
	return fallbackQuery
}
