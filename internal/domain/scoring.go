package domain

// Guest sentinels used in scoring requests when no authenticated user is
// attached to the request.
const (
	GuestUserID = "guest"
	GuestEmail  = "guest@sipmatch.com"
)

// Location is the requester's geographic position at recommendation time.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
}

// ScoringRequest is the exact payload sent to the scoring service.
type ScoringRequest struct {
	UserID    string         `json:"user_id"`
	Email     string         `json:"email"`
	Mood      string         `json:"mood"`
	Song      *string        `json:"song"`
	Location  Location       `json:"location"`
	Weather   ScoringWeather `json:"weather"`
	Timestamp string         `json:"timestamp"` // RFC 3339, captured at send time
}

// ScoringWeather carries weather as the scoring service expects it.
// Humidity is always null; the weather source does not report it.
type ScoringWeather struct {
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    *int   `json:"humidity"`
}

// ScoredDrink is one ranked drink as returned by the scoring service.
// Drinks are matched back to the catalog by name.
type ScoredDrink struct {
	Name           string   `json:"name"`
	NameArabic     string   `json:"nameArabic"`
	Category       string   `json:"category"`
	Temperature    string   `json:"temperature"`
	CaffeineLevel  string   `json:"caffeineLevel"`
	SweetnessLevel int      `json:"sweetnessLevel"`
	Score          float64  `json:"score"`
	Reasons        []string `json:"reasons"`
	FlavorProfile  []string `json:"flavorProfile"`
	Vegan          bool     `json:"vegan"`
	Intensity      int      `json:"intensity"`
}

// ScoringContext is the context echo the scoring service derives from a
// request, including the time-of-day bucket stamped onto saved records.
type ScoringContext struct {
	Mood        string `json:"mood"`
	Weather     string `json:"weather"`
	Temperature int    `json:"temperature"`
	TimeOfDay   string `json:"time_of_day"`
	HasSong     bool   `json:"has_song"`
}

// ScoringResponse is the scoring service's response envelope.
type ScoringResponse struct {
	Success         bool           `json:"success"`
	Recommendations []ScoredDrink  `json:"recommendations"`
	Context         ScoringContext `json:"context"`
	Error           string         `json:"error,omitempty"`
}

// ScorerHealth is the scoring service's health report.
type ScorerHealth struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

// Healthy reports whether the scoring service is up with a usable model.
func (h ScorerHealth) Healthy() bool {
	return h.Status == "running" && h.ModelLoaded
}
