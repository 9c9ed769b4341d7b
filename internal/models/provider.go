package models

import (
	"github.com/google/uuid"
)

// Provider is the role-record under which a user browses requests, bids on
// them and gets contracted. It shares its primary key with the owning user.
type Provider struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Score  float64   `gorm:"default:0" json:"score"`

	User       *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Categories []Category `gorm:"many2many:provider_categories" json:"categories,omitempty"`
	Offers     []Offer    `gorm:"foreignKey:ProviderID" json:"offers,omitempty"`
	Contracts  []Contract `gorm:"foreignKey:ProviderID" json:"contracts,omitempty"`
}
