package types

import (
	"github.com/google/uuid"
)

type Destination struct {
	ID   uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name string    `gorm:"not null;uniqueIndex" json:"name"`
}

func (Destination) TableName() string { return "destination" }

type ActivityCategory struct {
	ID   uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name string    `gorm:"not null;uniqueIndex" json:"name"`
}

func (ActivityCategory) TableName() string { return "activity_category" }

type Cuisine struct {
	ID   uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name string    `gorm:"not null;uniqueIndex" json:"name"`
}

func (Cuisine) TableName() string { return "cuisine" }
