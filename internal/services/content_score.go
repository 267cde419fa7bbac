package services

import (
	"github.com/google/uuid"

	"github.com/Emna-borji/tourismrep/internal/types"
)

// contentScore compares a candidate against each of the user's stated
// trips and keeps the best match: the user is assumed to match whichever
// single preference record fits this candidate best. The home-location
// bonus is added after the reduction. With zero preference records the
// score is exactly 0, home bonus included.
func contentScore(sig *userSignals, c types.Candidate, stops []types.CircuitStop) float64 {
	if len(sig.prefs) == 0 {
		return 0
	}

	var best float64
	for _, pref := range sig.prefs {
		if match := prefMatch(pref, c, stops); match > best {
			best = match
		}
	}

	return best + homeBonus(sig.user, c)
}

func prefMatch(pref *types.Preference, c types.Candidate, stops []types.CircuitStop) float64 {
	var score float64

	if c.Type == types.EntityCircuit {
		if c.DepartureCityID != nil && *c.DepartureCityID == pref.DepartureCityID {
			score += 10
		}
		if c.ArrivalCityID != nil && *c.ArrivalCityID == pref.ArrivalCityID {
			score += 10
		}
	} else if c.DestinationID != nil &&
		(*c.DestinationID == pref.DepartureCityID || *c.DestinationID == pref.ArrivalCityID) {
		score += 10
	}

	if c.Price != nil {
		if *c.Price <= pref.Budget {
			score += 5
		} else {
			score -= 5
		}
	}

	if c.Type == types.EntityCircuit {
		if pref.DepartureDate != nil && pref.ArrivalDate != nil {
			tripDays := int(pref.ArrivalDate.Sub(*pref.DepartureDate).Hours()/24) + 1
			if c.DurationDays <= tripDays {
				score += 5
			}
		}
		if accommodationSatisfied(pref, stops) {
			score += 5
		}
		return score
	}

	switch c.Type {
	case types.EntityHotel:
		if pref.Accommodation == types.AccommodationHotel && c.Stars >= pref.Stars {
			score += 5
		}
	case types.EntityGuestHouse:
		if pref.Accommodation == types.AccommodationGuestHouse {
			score += 5
		}
	case types.EntityActivity:
		if c.CategoryID != nil && prefHasCategory(pref, *c.CategoryID) {
			score += 5
		}
	case types.EntityRestaurant:
		if c.CuisineID != nil && prefHasCuisine(pref, *c.CuisineID) {
			score += 5
		}
	case types.EntityFestival:
		if c.Date != nil && pref.DepartureDate != nil && pref.ArrivalDate != nil &&
			!c.Date.Before(*pref.DepartureDate) && !c.Date.After(*pref.ArrivalDate) {
			score += 5
		}
	}
	return score
}

// accommodationSatisfied reports whether a circuit's schedule covers the
// preferred accommodation: a hotel stop meeting the star minimum, or any
// guest house stop when the user prefers guest houses.
func accommodationSatisfied(pref *types.Preference, stops []types.CircuitStop) bool {
	switch pref.Accommodation {
	case types.AccommodationHotel:
		for _, stop := range stops {
			if stop.EntityType == types.EntityHotel && stop.Stars >= pref.Stars {
				return true
			}
		}
	case types.AccommodationGuestHouse:
		for _, stop := range stops {
			if stop.EntityType == types.EntityGuestHouse {
				return true
			}
		}
	}
	return false
}

func prefHasCategory(pref *types.Preference, categoryID uuid.UUID) bool {
	for _, cat := range pref.ActivityCategories {
		if cat.ID == categoryID {
			return true
		}
	}
	return false
}

func prefHasCuisine(pref *types.Preference, cuisineID uuid.UUID) bool {
	for _, cui := range pref.Cuisines {
		if cui.ID == cuisineID {
			return true
		}
	}
	return false
}

func homeBonus(user *types.User, c types.Candidate) float64 {
	if user == nil || user.LocationID == nil {
		return 0
	}
	home := *user.LocationID

	var bonus float64
	if c.Type == types.EntityCircuit {
		if c.DepartureCityID != nil && *c.DepartureCityID == home {
			bonus += 5
		}
		if c.ArrivalCityID != nil && *c.ArrivalCityID == home {
			bonus += 5
		}
		return bonus
	}
	if c.DestinationID != nil && *c.DestinationID == home {
		bonus += 5
	}
	return bonus
}
