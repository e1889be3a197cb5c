package datasources

import (
	"context"

	"github.com/George-20m/Sip-Match2/internal/domain"
)

// Scorer ranks catalog drinks for a context payload. Ranking is wholly
// delegated to an external service; this service never scores locally.
type Scorer interface {
	ScoreDrinks(ctx context.Context, req domain.ScoringRequest) (domain.ScoringResponse, error)
	Health(ctx context.Context) (domain.ScorerHealth, error)
}
