package types

import (
	"time"

	"github.com/google/uuid"
)

// ClickEvent records that a user opened an entity's detail view.
// Append-only; the recommendation engine never writes these.
type ClickEvent struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	User       *User      `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	EntityType EntityType `gorm:"not null;index:idx_click_entity" json:"entity_type"`
	EntityID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_click_entity" json:"entity_id"`
	ClickedAt  time.Time  `gorm:"not null;default:now();index" json:"clicked_at"`
}

func (ClickEvent) TableName() string { return "click_event" }

type FavoriteEvent struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	User       *User      `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	EntityType EntityType `gorm:"not null;index:idx_favorite_entity" json:"entity_type"`
	EntityID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_favorite_entity" json:"entity_id"`
	CreatedAt  time.Time  `gorm:"not null;default:now()" json:"created_at"`
}

func (FavoriteEvent) TableName() string { return "favorite_event" }

type SearchEvent struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	User       *User      `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	EntityType EntityType `gorm:"not null;index" json:"entity_type"`
	SearchTerm string     `gorm:"not null" json:"search_term"`
	SearchedAt time.Time  `gorm:"not null;default:now();index" json:"searched_at"`
}

func (SearchEvent) TableName() string { return "search_event" }

// Review is a 1-5 star rating left by a user against an entity.
type Review struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	User       *User      `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	EntityType EntityType `gorm:"not null;index:idx_review_entity" json:"entity_type"`
	EntityID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_review_entity" json:"entity_id"`
	Rating     int        `gorm:"not null" json:"rating"`
	Comment    string     `json:"comment"`
	CreatedAt  time.Time  `gorm:"not null;default:now()" json:"created_at"`
}

func (Review) TableName() string { return "review" }
