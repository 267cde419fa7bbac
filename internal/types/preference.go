package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	AccommodationHotel      = "hotel"
	AccommodationGuestHouse = "guest_house"
)

// Preference is one stated trip of a user. A user may have several; the
// content scorer keeps the best-matching one per candidate.
type Preference struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	User            *User      `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Budget          float64    `gorm:"not null" json:"budget"`
	Accommodation   string     `gorm:"not null" json:"accommodation"`
	Stars           int        `gorm:"not null;default:0" json:"stars"`
	// Minimum restaurant rating; stored with the trip but not used by the
	// recommendation scorer.
	Forks           int        `gorm:"not null;default:0" json:"forks"`
	DepartureCityID uuid.UUID  `gorm:"type:uuid;not null;index" json:"departure_city_id"`
	DepartureCity   *Destination `gorm:"foreignKey:DepartureCityID;references:ID" json:"departure_city,omitempty"`
	ArrivalCityID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"arrival_city_id"`
	ArrivalCity     *Destination `gorm:"foreignKey:ArrivalCityID;references:ID" json:"arrival_city,omitempty"`
	DepartureDate   *time.Time `json:"departure_date,omitempty"`
	ArrivalDate     *time.Time `json:"arrival_date,omitempty"`

	ActivityCategories []ActivityCategory `gorm:"many2many:preference_activity_category" json:"activity_categories,omitempty"`
	Cuisines           []Cuisine          `gorm:"many2many:preference_cuisine" json:"cuisines,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Preference) TableName() string { return "preference" }
