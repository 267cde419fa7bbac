package types

import (
	"time"

	"github.com/google/uuid"
)

type Circuit struct {
	ID              uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name            string       `gorm:"not null;index" json:"name"`
	Description     string       `json:"description"`
	CircuitCode     string       `gorm:"not null;uniqueIndex" json:"circuit_code"`
	DepartureCityID uuid.UUID    `gorm:"type:uuid;not null;index" json:"departure_city_id"`
	DepartureCity   *Destination `gorm:"foreignKey:DepartureCityID;references:ID" json:"departure_city,omitempty"`
	ArrivalCityID   uuid.UUID    `gorm:"type:uuid;not null;index" json:"arrival_city_id"`
	ArrivalCity     *Destination `gorm:"foreignKey:ArrivalCityID;references:ID" json:"arrival_city,omitempty"`
	Price           *float64     `json:"price,omitempty"`
	DurationDays    int          `gorm:"not null;default:1" json:"duration_days"`
	CreatedAt       time.Time    `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"not null;default:now()" json:"updated_at"`
}

func (Circuit) TableName() string { return "circuit" }

// CircuitSchedule is one (day, entity) stop inside a circuit.
type CircuitSchedule struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CircuitID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"circuit_id"`
	Circuit    *Circuit   `gorm:"constraint:OnDelete:CASCADE;foreignKey:CircuitID;references:ID" json:"circuit,omitempty"`
	Day        int        `gorm:"not null" json:"day"`
	EntityType EntityType `gorm:"not null;index" json:"entity_type"`
	EntityID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"entity_id"`
	CreatedAt  time.Time  `gorm:"not null;default:now()" json:"created_at"`
}

func (CircuitSchedule) TableName() string { return "circuit_schedule" }

// CircuitHistory records that a user booked a circuit for given dates.
type CircuitHistory struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	User          *User      `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	CircuitID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"circuit_id"`
	Circuit       *Circuit   `gorm:"constraint:OnDelete:CASCADE;foreignKey:CircuitID;references:ID" json:"circuit,omitempty"`
	DepartureDate *time.Time `json:"departure_date,omitempty"`
	ArrivalDate   *time.Time `json:"arrival_date,omitempty"`
	CreatedAt     time.Time  `gorm:"not null;default:now()" json:"created_at"`
}

func (CircuitHistory) TableName() string { return "circuit_history" }
