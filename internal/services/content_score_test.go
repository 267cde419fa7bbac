package services

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Emna-borji/tourismrep/internal/types"
)

func floatPtr(v float64) *float64 { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func TestContentScore_NoPreferencesScoresZero(t *testing.T) {
	home := uuid.New()
	sig := newUserSignals(&types.User{ID: uuid.New(), LocationID: &home}, nil)

	c := types.Candidate{
		Type:            types.EntityHotel,
		ID:              uuid.New(),
		DestinationID:   &home,
		DestinationName: "Tunis",
		Price:           floatPtr(50),
	}

	// Without stated preferences even the home-location bonus is withheld.
	if got := contentScore(sig, c, nil); got != 0 {
		t.Fatalf("expected 0 for user without preferences, got %v", got)
	}
}

func TestContentScore_HotelMatchesPreference(t *testing.T) {
	dep := uuid.New()
	arr := uuid.New()
	pref := &types.Preference{
		Budget:          100,
		Accommodation:   types.AccommodationHotel,
		Stars:           3,
		DepartureCityID: dep,
		ArrivalCityID:   arr,
	}
	sig := newUserSignals(&types.User{ID: uuid.New()}, []*types.Preference{pref})

	c := types.Candidate{
		Type:          types.EntityHotel,
		ID:            uuid.New(),
		DestinationID: &arr,
		Price:         floatPtr(80),
		Stars:         4,
	}

	// destination +10, within budget +5, hotel with enough stars +5
	if got := contentScore(sig, c, nil); got != 20 {
		t.Fatalf("expected 20, got %v", got)
	}
}

func TestContentScore_OverBudgetPenalized(t *testing.T) {
	dep := uuid.New()
	pref := &types.Preference{
		Budget:          100,
		DepartureCityID: dep,
		ArrivalCityID:   uuid.New(),
	}
	sig := newUserSignals(&types.User{ID: uuid.New()}, []*types.Preference{pref})

	c := types.Candidate{
		Type:          types.EntityMuseum,
		ID:            uuid.New(),
		DestinationID: &dep,
		Price:         floatPtr(150),
	}

	if got := contentScore(sig, c, nil); got != 5 {
		t.Fatalf("expected 10-5=5, got %v", got)
	}
}

func TestContentScore_CircuitEndpointsBudgetDurationAccommodation(t *testing.T) {
	dep := uuid.New()
	arr := uuid.New()
	depDate := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	arrDate := time.Date(2026, 7, 7, 0, 0, 0, 0, time.UTC)
	pref := &types.Preference{
		Budget:          500,
		Accommodation:   types.AccommodationHotel,
		Stars:           3,
		DepartureCityID: dep,
		ArrivalCityID:   arr,
		DepartureDate:   timePtr(depDate),
		ArrivalDate:     timePtr(arrDate),
	}
	sig := newUserSignals(&types.User{ID: uuid.New()}, []*types.Preference{pref})

	c := types.Candidate{
		Type:            types.EntityCircuit,
		ID:              uuid.New(),
		DepartureCityID: &dep,
		ArrivalCityID:   &arr,
		Price:           floatPtr(400),
		DurationDays:    5,
	}
	stops := []types.CircuitStop{
		{Day: 1, EntityType: types.EntityHotel, EntityID: uuid.New(), Stars: 4},
	}

	// both endpoints +20, budget +5, 5 days fits the 7-day trip +5,
	// 4-star hotel stop satisfies the accommodation ask +5
	if got := contentScore(sig, c, stops); got != 35 {
		t.Fatalf("expected 35, got %v", got)
	}
}

func TestContentScore_CircuitAccommodationRequiresStarMinimum(t *testing.T) {
	dep := uuid.New()
	pref := &types.Preference{
		Budget:          500,
		Accommodation:   types.AccommodationHotel,
		Stars:           5,
		DepartureCityID: dep,
		ArrivalCityID:   uuid.New(),
	}
	sig := newUserSignals(&types.User{ID: uuid.New()}, []*types.Preference{pref})

	c := types.Candidate{
		Type:            types.EntityCircuit,
		ID:              uuid.New(),
		DepartureCityID: &dep,
		ArrivalCityID:   uuidPtr(uuid.New()),
		Price:           floatPtr(400),
	}
	stops := []types.CircuitStop{
		{Day: 1, EntityType: types.EntityHotel, EntityID: uuid.New(), Stars: 3},
	}

	// departure endpoint +10, budget +5; the 3-star stop misses the 5-star ask
	if got := contentScore(sig, c, stops); got != 15 {
		t.Fatalf("expected 15, got %v", got)
	}
}

func uuidPtr(id uuid.UUID) *uuid.UUID { return &id }

func TestContentScore_KeepsBestMatchingPreference(t *testing.T) {
	cityA := uuid.New()
	cityB := uuid.New()
	cityC := uuid.New()
	prefs := []*types.Preference{
		{Budget: 10, DepartureCityID: cityB, ArrivalCityID: cityC},
		{Budget: 100, DepartureCityID: cityA, ArrivalCityID: cityB},
	}
	sig := newUserSignals(&types.User{ID: uuid.New()}, prefs)

	c := types.Candidate{
		Type:          types.EntityRestaurant,
		ID:            uuid.New(),
		DestinationID: &cityA,
		Price:         floatPtr(50),
	}

	// first pref: no destination match, over budget -> -5
	// second pref: destination +10, budget +5 -> 15; the best one wins
	if got := contentScore(sig, c, nil); got != 15 {
		t.Fatalf("expected 15, got %v", got)
	}
}

func TestContentScore_HomeBonusAddedAfterBestMatch(t *testing.T) {
	home := uuid.New()
	pref := &types.Preference{
		Budget:          100,
		DepartureCityID: home,
		ArrivalCityID:   uuid.New(),
	}
	sig := newUserSignals(&types.User{ID: uuid.New(), LocationID: &home}, []*types.Preference{pref})

	c := types.Candidate{
		Type:          types.EntityActivity,
		ID:            uuid.New(),
		DestinationID: &home,
	}

	// destination +10, no price, home bonus +5
	if got := contentScore(sig, c, nil); got != 15 {
		t.Fatalf("expected 15, got %v", got)
	}
}

func TestContentScore_CircuitHomeBonusPerEndpoint(t *testing.T) {
	home := uuid.New()
	pref := &types.Preference{
		Budget:          100,
		DepartureCityID: home,
		ArrivalCityID:   home,
	}
	sig := newUserSignals(&types.User{ID: uuid.New(), LocationID: &home}, []*types.Preference{pref})

	c := types.Candidate{
		Type:            types.EntityCircuit,
		ID:              uuid.New(),
		DepartureCityID: &home,
		ArrivalCityID:   &home,
	}

	// both endpoints +20, home bonus +5 per matching endpoint
	if got := contentScore(sig, c, nil); got != 30 {
		t.Fatalf("expected 30, got %v", got)
	}
}

func TestContentScore_RestaurantCuisineAndActivityCategory(t *testing.T) {
	city := uuid.New()
	cuisine := types.Cuisine{ID: uuid.New(), Name: "tunisian"}
	category := types.ActivityCategory{ID: uuid.New(), Name: "hiking"}
	pref := &types.Preference{
		Budget:             100,
		DepartureCityID:    city,
		ArrivalCityID:      uuid.New(),
		Cuisines:           []types.Cuisine{cuisine},
		ActivityCategories: []types.ActivityCategory{category},
	}
	sig := newUserSignals(&types.User{ID: uuid.New()}, []*types.Preference{pref})

	restaurant := types.Candidate{
		Type:          types.EntityRestaurant,
		ID:            uuid.New(),
		DestinationID: &city,
		CuisineID:     &cuisine.ID,
	}
	if got := contentScore(sig, restaurant, nil); got != 15 {
		t.Fatalf("restaurant: expected 15, got %v", got)
	}

	activity := types.Candidate{
		Type:          types.EntityActivity,
		ID:            uuid.New(),
		DestinationID: &city,
		CategoryID:    &category.ID,
	}
	if got := contentScore(sig, activity, nil); got != 15 {
		t.Fatalf("activity: expected 15, got %v", got)
	}

	otherCuisine := uuid.New()
	mismatch := types.Candidate{
		Type:          types.EntityRestaurant,
		ID:            uuid.New(),
		DestinationID: &city,
		CuisineID:     &otherCuisine,
	}
	if got := contentScore(sig, mismatch, nil); got != 10 {
		t.Fatalf("cuisine mismatch: expected 10, got %v", got)
	}
}

func TestContentScore_FestivalWithinTripDates(t *testing.T) {
	city := uuid.New()
	pref := &types.Preference{
		Budget:          100,
		DepartureCityID: city,
		ArrivalCityID:   uuid.New(),
		DepartureDate:   timePtr(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)),
		ArrivalDate:     timePtr(time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)),
	}
	sig := newUserSignals(&types.User{ID: uuid.New()}, []*types.Preference{pref})

	inside := types.Candidate{
		Type:          types.EntityFestival,
		ID:            uuid.New(),
		DestinationID: &city,
		Date:          timePtr(time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC)),
	}
	if got := contentScore(sig, inside, nil); got != 15 {
		t.Fatalf("festival inside trip: expected 15, got %v", got)
	}

	outside := types.Candidate{
		Type:          types.EntityFestival,
		ID:            uuid.New(),
		DestinationID: &city,
		Date:          timePtr(time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)),
	}
	if got := contentScore(sig, outside, nil); got != 10 {
		t.Fatalf("festival outside trip: expected 10, got %v", got)
	}
}

func TestContentScore_GuestHousePreference(t *testing.T) {
	city := uuid.New()
	pref := &types.Preference{
		Budget:          100,
		Accommodation:   types.AccommodationGuestHouse,
		DepartureCityID: city,
		ArrivalCityID:   uuid.New(),
	}
	sig := newUserSignals(&types.User{ID: uuid.New()}, []*types.Preference{pref})

	guestHouse := types.Candidate{
		Type:          types.EntityGuestHouse,
		ID:            uuid.New(),
		DestinationID: &city,
	}
	if got := contentScore(sig, guestHouse, nil); got != 15 {
		t.Fatalf("guest house: expected 15, got %v", got)
	}

	hotel := types.Candidate{
		Type:          types.EntityHotel,
		ID:            uuid.New(),
		DestinationID: &city,
		Stars:         5,
	}
	// user prefers guest houses, so no accommodation bonus for hotels
	if got := contentScore(sig, hotel, nil); got != 10 {
		t.Fatalf("hotel against guest house pref: expected 10, got %v", got)
	}
}
