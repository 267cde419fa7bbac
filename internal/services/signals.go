package services

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/Emna-borji/tourismrep/internal/types"
)

// userSignals is the per-request snapshot every scorer reads from. It is
// assembled once per computation so the scorers stay pure functions of
// (preferences, candidate, events as of computation time).
type userSignals struct {
	user      *types.User
	prefs     []*types.Preference
	cities    map[uuid.UUID]struct{}
	clicked   map[types.EntityKey]struct{}
	favorited map[types.EntityKey]struct{}
	booked    map[uuid.UUID]struct{}
	// bookings keeps the booked circuit ids in load order for the boost pass.
	bookings    []uuid.UUID
	ratings     map[types.EntityKey]float64
	searchTerms map[types.EntityType][]string
}

func newUserSignals(user *types.User, prefs []*types.Preference) *userSignals {
	sig := &userSignals{
		user:        user,
		prefs:       prefs,
		cities:      make(map[uuid.UUID]struct{}),
		clicked:     make(map[types.EntityKey]struct{}),
		favorited:   make(map[types.EntityKey]struct{}),
		booked:      make(map[uuid.UUID]struct{}),
		ratings:     make(map[types.EntityKey]float64),
		searchTerms: make(map[types.EntityType][]string),
	}
	for _, pref := range prefs {
		sig.cities[pref.DepartureCityID] = struct{}{}
		sig.cities[pref.ArrivalCityID] = struct{}{}
	}
	if user != nil && user.LocationID != nil {
		sig.cities[*user.LocationID] = struct{}{}
	}
	return sig
}

// cityIDs returns the user's relevant destination set in a stable order.
func (s *userSignals) cityIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.cities))
	for id := range s.cities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

// clickKeySet collapses click events into set membership. Repeated clicks
// on the same entity count once.
func clickKeySet(events []*types.ClickEvent) map[types.EntityKey]struct{} {
	out := make(map[types.EntityKey]struct{}, len(events))
	for _, e := range events {
		out[types.EntityKey{Type: e.EntityType, ID: e.EntityID}] = struct{}{}
	}
	return out
}

func favoriteKeySet(events []*types.FavoriteEvent) map[types.EntityKey]struct{} {
	out := make(map[types.EntityKey]struct{}, len(events))
	for _, e := range events {
		out[types.EntityKey{Type: e.EntityType, ID: e.EntityID}] = struct{}{}
	}
	return out
}

// searchTokens lowercases and splits the concatenated recent search terms.
func searchTokens(events []*types.SearchEvent) []string {
	seen := make(map[string]struct{})
	var tokens []string
	for _, e := range events {
		for _, tok := range strings.Fields(strings.ToLower(e.SearchTerm)) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
