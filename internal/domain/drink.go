package domain

// Drink is a catalog entity. The catalog is owned by operations tooling and
// is read-only from this service's perspective.
type Drink struct {
	ID             string   `json:"id"`
	ProductCode    string   `json:"product_code,omitempty"`
	Name           string   `json:"name"`
	NameArabic     string   `json:"name_arabic"`
	Category       string   `json:"category"`
	Subcategory    string   `json:"subcategory,omitempty"`
	Temperature    string   `json:"temperature"`
	CaffeineLevel  string   `json:"caffeine_level,omitempty"`
	SweetnessLevel int      `json:"sweetness_level"`
	Vegan          bool     `json:"vegan"`
	Vegetarian     bool     `json:"vegetarian"`
	FlavorProfile  []string `json:"flavor_profile"`
	Intensity      int      `json:"intensity,omitempty"`
	BestForMoods   []string `json:"best_for_moods"`
	BestForWeather []string `json:"best_for_weather"`
	BestTimeOfDay  []string `json:"best_time_of_day"`
	Seasonal       bool     `json:"seasonal"`
	Description    string   `json:"description,omitempty"`
}

type DrinkTemperature string

const (
	DrinkTemperatureHot    DrinkTemperature = "hot"
	DrinkTemperatureCold   DrinkTemperature = "cold"
	DrinkTemperatureFrozen DrinkTemperature = "frozen"
	DrinkTemperatureAny    DrinkTemperature = "any"
)

type CaffeineLevel string

const (
	CaffeineLevelNone   CaffeineLevel = "none"
	CaffeineLevelLow    CaffeineLevel = "low"
	CaffeineLevelMedium CaffeineLevel = "medium"
	CaffeineLevelHigh   CaffeineLevel = "high"
)

type DrinkFilters struct {
	Category      string
	Temperature   string
	CaffeineLevel string
	VeganOnly     bool
	NameSearch    string
}
