package command

import (
	"context"
	"fmt"
	"time"

	"github.com/George-20m/Sip-Match2/internal/datasources"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

// LogInteractionRequest is the request for the LogInteraction command.
type LogInteractionRequest struct {
	UserID  string
	DrinkID string
	Type    domain.InteractionType
	Context domain.ContextSnapshot
	Rating  *int
}

// LogInteractionResponse carries the ID of the created record.
type LogInteractionResponse struct {
	ID string `json:"id"`
}

// LogInteraction records a single user-drink exposure (ordered, skipped and
// the like) outside the batch written by a recommendation request.
type LogInteraction struct {
	Creator datasources.InteractionCreator

	now func() time.Time
}

// NewLogInteraction creates a properly initialized LogInteraction command.
func NewLogInteraction(creator datasources.InteractionCreator) *LogInteraction {
	return &LogInteraction{Creator: creator, now: time.Now}
}

func (c *LogInteraction) Execute(
	ctx context.Context,
	req LogInteractionRequest,
) (LogInteractionResponse, error) {
	if !domain.ValidInteractionType(req.Type) {
		return LogInteractionResponse{}, fmt.Errorf("unknown interaction type [%s]", req.Type)
	}
	if req.Rating != nil && (*req.Rating < minRating || *req.Rating > maxRating) {
		return LogInteractionResponse{}, fmt.Errorf("rating must be between %d and %d, got %d",
			minRating, maxRating, *req.Rating)
	}

	id, err := c.Creator.CreateInteraction(ctx, domain.InteractionRecord{
		UserID:    req.UserID,
		DrinkID:   req.DrinkID,
		Context:   req.Context,
		Type:      req.Type,
		Rating:    req.Rating,
		Timestamp: c.now().UnixMilli(),
	})
	if err != nil {
		return LogInteractionResponse{}, fmt.Errorf("saving interaction: %w", err)
	}

	return LogInteractionResponse{ID: id}, nil
}
