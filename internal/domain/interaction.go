package domain

// InteractionType classifies a single user-drink exposure.
type InteractionType string

const (
	InteractionViewed    InteractionType = "viewed"
	InteractionOrdered   InteractionType = "ordered"
	InteractionSkipped   InteractionType = "skipped"
	InteractionFavorited InteractionType = "favorited"
)

// ValidInteractionType reports whether t is one of the known interaction types.
func ValidInteractionType(t InteractionType) bool {
	switch t {
	case InteractionViewed, InteractionOrdered, InteractionSkipped, InteractionFavorited:
		return true
	}
	return false
}

// ContextSnapshot captures the conditions at the moment a record was written.
// It is immutable once stored; favorite records carry an empty snapshot.
type ContextSnapshot struct {
	Mood             string `json:"mood"`
	Temperature      int    `json:"temperature"`
	WeatherCondition string `json:"weather_condition"`
	TimeOfDay        string `json:"time_of_day"`
}

// InteractionRecord is one logged exposure of a user to a drink. Only the
// rating may change after the record is written.
type InteractionRecord struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	DrinkID   string          `json:"drink_id"`
	Context   ContextSnapshot `json:"context"`
	Type      InteractionType `json:"interaction_type"`
	Rating    *int            `json:"rating,omitempty"`
	Timestamp int64           `json:"timestamp"` // epoch milliseconds
}

// InteractionWithDrink pairs a record with its catalog drink.
// Drink is nil when the referenced drink no longer exists in the catalog.
type InteractionWithDrink struct {
	InteractionRecord
	Drink *Drink `json:"drink"`
}
