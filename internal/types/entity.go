package types

import (
	"time"

	"github.com/google/uuid"
)

// EntityType tags the closed set of recommendable entity variants.
type EntityType string

const (
	EntityCircuit            EntityType = "circuit"
	EntityHotel              EntityType = "hotel"
	EntityGuestHouse         EntityType = "guest_house"
	EntityRestaurant         EntityType = "restaurant"
	EntityActivity           EntityType = "activity"
	EntityMuseum             EntityType = "museum"
	EntityFestival           EntityType = "festival"
	EntityArchaeologicalSite EntityType = "archaeological_site"
)

// AllEntityTypes lists every variant in scoring order: circuits first,
// because their ranking feeds the boost applied to the other types.
var AllEntityTypes = []EntityType{
	EntityCircuit,
	EntityHotel,
	EntityGuestHouse,
	EntityRestaurant,
	EntityActivity,
	EntityMuseum,
	EntityFestival,
	EntityArchaeologicalSite,
}

// EntityKey identifies one entity across the polymorphic tables.
type EntityKey struct {
	Type EntityType
	ID   uuid.UUID
}

// Candidate is the normalized projection of one entity variant that the
// scorers consume. Fields that a variant does not have stay zero/nil.
type Candidate struct {
	Type            EntityType
	ID              uuid.UUID
	Name            string
	Description     string
	DestinationID   *uuid.UUID
	DestinationName string
	// Circuit endpoints; nil for every other variant.
	DepartureCityID   *uuid.UUID
	DepartureCityName string
	ArrivalCityID     *uuid.UUID
	ArrivalCityName   string
	CircuitCode       string
	Price             *float64
	Stars             int
	Forks             int
	CategoryID        *uuid.UUID
	CuisineID         *uuid.UUID
	Date              *time.Time
	DurationDays      int
}

// Key returns the candidate's polymorphic identity.
func (c Candidate) Key() EntityKey { return EntityKey{Type: c.Type, ID: c.ID} }

// CircuitStop is a schedule row resolved for scoring. Hotel stops carry the
// hotel's star rating so the content scorer can check star satisfaction.
type CircuitStop struct {
	Day        int        `json:"day"`
	EntityType EntityType `json:"entity_type"`
	EntityID   uuid.UUID  `json:"entity_id"`
	Stars      int        `json:"stars,omitempty"`
}

// RankedEntity is one row of the recommendation response.
type RankedEntity struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Destination   string     `json:"destination,omitempty"`
	DepartureCity string     `json:"departure_city,omitempty"`
	ArrivalCity   string     `json:"arrival_city,omitempty"`
	CircuitCode   string     `json:"circuit_code,omitempty"`
	Price         *float64   `json:"price,omitempty"`
	Stars         int        `json:"stars,omitempty"`
	Forks         int        `json:"forks,omitempty"`
	Date          *time.Time `json:"date,omitempty"`
	DurationDays  int        `json:"duration_days,omitempty"`
	Score         float64    `json:"score"`
}

// RecommendationSet is the capped, ordered result per entity type.
type RecommendationSet map[EntityType][]RankedEntity
