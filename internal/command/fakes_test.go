package command

import (
	"context"
	"sync"

	"github.com/George-20m/Sip-Match2/internal/domain"
)

// fakeWeatherSource returns a fixed weather reading.
type fakeWeatherSource struct {
	weather domain.Weather
	err     error
	calls   int
}

func (f *fakeWeatherSource) CurrentWeather(_ context.Context, _, _ float64) (domain.Weather, error) {
	f.calls++
	return f.weather, f.err
}

// fakeScorer records the payload it was sent and returns a canned response.
type fakeScorer struct {
	response domain.ScoringResponse
	err      error
	calls    int
	lastReq  domain.ScoringRequest
}

func (f *fakeScorer) ScoreDrinks(_ context.Context, req domain.ScoringRequest) (domain.ScoringResponse, error) {
	f.calls++
	f.lastReq = req
	return f.response, f.err
}

func (f *fakeScorer) Health(_ context.Context) (domain.ScorerHealth, error) {
	return domain.ScorerHealth{Status: "healthy", ModelLoaded: true}, nil
}

// fakeCatalog serves drinks keyed by both ID and name.
type fakeCatalog struct {
	drinks  []domain.Drink
	nameErr error
}

func (f *fakeCatalog) FetchDrinksByID(_ context.Context, ids []string) (map[string]domain.Drink, error) {
	out := make(map[string]domain.Drink)
	for _, id := range ids {
		for _, d := range f.drinks {
			if d.ID == id {
				out[id] = d
			}
		}
	}
	return out, nil
}

func (f *fakeCatalog) FetchDrinksByName(_ context.Context, names []string) (map[string]domain.Drink, error) {
	if f.nameErr != nil {
		return nil, f.nameErr
	}
	out := make(map[string]domain.Drink)
	for _, name := range names {
		for _, d := range f.drinks {
			if d.Name == name {
				out[name] = d
			}
		}
	}
	return out, nil
}

// fakeInteractionStore is an in-memory interaction store safe for
// concurrent writes, so tests can assert on asynchronous batch saves.
type fakeInteractionStore struct {
	mu        sync.Mutex
	records   []domain.InteractionRecord
	nextID    int
	createErr map[string]error
}

func (f *fakeInteractionStore) CreateInteraction(_ context.Context, rec domain.InteractionRecord) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err, ok := f.createErr[rec.DrinkID]; ok {
		return "", err
	}

	if rec.ID == "" {
		f.nextID++
		rec.ID = "rec-" + string(rune('0'+f.nextID))
	}
	f.records = append(f.records, rec)
	return rec.ID, nil
}

func (f *fakeInteractionStore) DeleteInteraction(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, rec := range f.records {
		if rec.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeInteractionStore) ListUserInteractions(_ context.Context, userID string) ([]domain.InteractionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.InteractionRecord
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeInteractionStore) FindFavorite(_ context.Context, userID, drinkID string) (*domain.InteractionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, rec := range f.records {
		if rec.UserID == userID && rec.DrinkID == drinkID && rec.Type == domain.InteractionFavorited {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeInteractionStore) ListFavorites(_ context.Context, userID string) ([]domain.InteractionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.InteractionRecord
	for _, rec := range f.records {
		if rec.UserID == userID && rec.Type == domain.InteractionFavorited {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeInteractionStore) UpdateRating(_ context.Context, interactionID string, rating int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, rec := range f.records {
		if rec.ID == interactionID {
			f.records[i].Rating = &rating
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeInteractionStore) savedRecords() []domain.InteractionRecord {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.InteractionRecord, len(f.records))
	copy(out, f.records)
	return out
}

// fakeIdentityChecker reports existence after a set number of calls.
type fakeIdentityChecker struct {
	existsAfter int
	err         error
	calls       int
}

func (f *fakeIdentityChecker) IdentityExists(_ context.Context, _ string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.calls >= f.existsAfter, nil
}

// fakeUserStore upserts into a map keyed by external ID.
type fakeUserStore struct {
	users     map[string]domain.User
	upsertErr error
}

func (f *fakeUserStore) UpsertUser(_ context.Context, user domain.User) (domain.User, error) {
	if f.upsertErr != nil {
		return domain.User{}, f.upsertErr
	}
	if f.users == nil {
		f.users = make(map[string]domain.User)
	}
	if user.ID == "" {
		user.ID = "user-" + user.ExternalID
	}
	f.users[user.ExternalID] = user
	return user, nil
}
