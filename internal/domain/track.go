package domain

import "strings"

// Track is a song the user can attach to a recommendation request.
type Track struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Artists       []string `json:"artists"`
	Album         string   `json:"album"`
	AlbumImageURL string   `json:"album_image_url,omitempty"`
	PreviewURL    *string  `json:"preview_url"`
	DurationMS    int      `json:"duration_ms"`
}

// SongDescription formats a song selection the way the scoring service
// expects it: "<title> - <artist1>, <artist2>, ...".
func SongDescription(title string, artists []string) string {
	return title + " - " + strings.Join(artists, ", ")
}
