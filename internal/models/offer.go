package models

import (
	"time"

	"github.com/google/uuid"
)

// Offer is a provider's bid against a request. A provider can bid at most
// once per request, enforced by the composite unique index.
type Offer struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Description string `gorm:"type:text" json:"description"`

	ProviderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_offers_provider_request" json:"provider_id"`
	RequestID  uint      `gorm:"not null;uniqueIndex:idx_offers_provider_request;index" json:"request_id"`

	CreatedAt time.Time `json:"created_at"`

	Provider *Provider `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	Request  *Request  `gorm:"foreignKey:RequestID" json:"request,omitempty"`
}
