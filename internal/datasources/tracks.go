package datasources

import (
	"context"

	"github.com/George-20m/Sip-Match2/internal/domain"
)

// TrackSearcher finds songs the user can attach to a recommendation request.
type TrackSearcher interface {
	SearchTracks(ctx context.Context, query string, limit int) ([]domain.Track, error)
}

// NullTrackSearcher is a null implementation of TrackSearcher.
type NullTrackSearcher struct{}

var _ TrackSearcher = NullTrackSearcher{}

func (NullTrackSearcher) SearchTracks(_ context.Context, _ string, _ int) ([]domain.Track, error) {
	return nil, nil
}
