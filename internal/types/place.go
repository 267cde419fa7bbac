package types

import (
	"time"

	"github.com/google/uuid"
)

type Restaurant struct {
	ID            uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name          string       `gorm:"not null;index" json:"name"`
	Description   string       `json:"description"`
	DestinationID uuid.UUID    `gorm:"type:uuid;not null;index" json:"destination_id"`
	Destination   *Destination `gorm:"foreignKey:DestinationID;references:ID" json:"destination,omitempty"`
	Price         *float64     `json:"price,omitempty"`
	Forks         int          `gorm:"not null;default:0" json:"forks"`
	CuisineID     *uuid.UUID   `gorm:"type:uuid;index" json:"cuisine_id,omitempty"`
	Cuisine       *Cuisine     `gorm:"foreignKey:CuisineID;references:ID" json:"cuisine,omitempty"`
	CreatedAt     time.Time    `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null;default:now()" json:"updated_at"`
}

func (Restaurant) TableName() string { return "restaurant" }

type Activity struct {
	ID            uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name          string            `gorm:"not null;index" json:"name"`
	Description   string            `json:"description"`
	DestinationID uuid.UUID         `gorm:"type:uuid;not null;index" json:"destination_id"`
	Destination   *Destination      `gorm:"foreignKey:DestinationID;references:ID" json:"destination,omitempty"`
	Price         *float64          `json:"price,omitempty"`
	CategoryID    *uuid.UUID        `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category      *ActivityCategory `gorm:"foreignKey:CategoryID;references:ID" json:"category,omitempty"`
	CreatedAt     time.Time         `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"not null;default:now()" json:"updated_at"`
}

func (Activity) TableName() string { return "activity" }

type Museum struct {
	ID            uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name          string       `gorm:"not null;index" json:"name"`
	Description   string       `json:"description"`
	DestinationID uuid.UUID    `gorm:"type:uuid;not null;index" json:"destination_id"`
	Destination   *Destination `gorm:"foreignKey:DestinationID;references:ID" json:"destination,omitempty"`
	Price         *float64     `json:"price,omitempty"`
	CreatedAt     time.Time    `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null;default:now()" json:"updated_at"`
}

func (Museum) TableName() string { return "museum" }

type Festival struct {
	ID            uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name          string       `gorm:"not null;index" json:"name"`
	Description   string       `json:"description"`
	DestinationID uuid.UUID    `gorm:"type:uuid;not null;index" json:"destination_id"`
	Destination   *Destination `gorm:"foreignKey:DestinationID;references:ID" json:"destination,omitempty"`
	Price         *float64     `json:"price,omitempty"`
	Date          *time.Time   `json:"date,omitempty"`
	CreatedAt     time.Time    `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null;default:now()" json:"updated_at"`
}

func (Festival) TableName() string { return "festival" }

type ArchaeologicalSite struct {
	ID            uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name          string       `gorm:"not null;index" json:"name"`
	Description   string       `json:"description"`
	DestinationID uuid.UUID    `gorm:"type:uuid;not null;index" json:"destination_id"`
	Destination   *Destination `gorm:"foreignKey:DestinationID;references:ID" json:"destination,omitempty"`
	Price         *float64     `json:"price,omitempty"`
	CreatedAt     time.Time    `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null;default:now()" json:"updated_at"`
}

func (ArchaeologicalSite) TableName() string { return "archaeological_site" }
