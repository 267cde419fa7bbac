package types

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email      string       `gorm:"not null;uniqueIndex" json:"email"`
	// Home location, optional; feeds the content scorer's location bonus.
	LocationID *uuid.UUID   `gorm:"type:uuid;index" json:"location_id,omitempty"`
	Location   *Destination `gorm:"constraint:OnDelete:SET NULL;foreignKey:LocationID;references:ID" json:"location,omitempty"`
	CreatedAt  time.Time    `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"not null;default:now()" json:"updated_at"`
}

func (User) TableName() string { return "user" }
