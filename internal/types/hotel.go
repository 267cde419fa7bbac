package types

import (
	"time"

	"github.com/google/uuid"
)

type Hotel struct {
	ID            uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name          string       `gorm:"not null;index" json:"name"`
	Description   string       `json:"description"`
	DestinationID uuid.UUID    `gorm:"type:uuid;not null;index" json:"destination_id"`
	Destination   *Destination `gorm:"foreignKey:DestinationID;references:ID" json:"destination,omitempty"`
	Price         *float64     `json:"price,omitempty"`
	Stars         int          `gorm:"not null;default:0" json:"stars"`
	CreatedAt     time.Time    `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null;default:now()" json:"updated_at"`
}

func (Hotel) TableName() string { return "hotel" }

type GuestHouse struct {
	ID            uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name          string       `gorm:"not null;index" json:"name"`
	Description   string       `json:"description"`
	DestinationID uuid.UUID    `gorm:"type:uuid;not null;index" json:"destination_id"`
	Destination   *Destination `gorm:"foreignKey:DestinationID;references:ID" json:"destination,omitempty"`
	Price         *float64     `json:"price,omitempty"`
	CreatedAt     time.Time    `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null;default:now()" json:"updated_at"`
}

func (GuestHouse) TableName() string { return "guest_house" }
