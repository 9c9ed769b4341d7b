package models

import (
	"time"

	"github.com/google/uuid"
)

type ContractStatus string

const (
	ContractActive    ContractStatus = "active"
	ContractPaused    ContractStatus = "paused"
	ContractCancelled ContractStatus = "cancelled"
)

// Contract awards a request to a provider. The unique index on RequestID
// keeps a request from being contracted twice.
type Contract struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EmployerID uuid.UUID `gorm:"type:uuid;index;not null" json:"employer_id"`
	ProviderID uuid.UUID `gorm:"type:uuid;index;not null" json:"provider_id"`
	RequestID  uint      `gorm:"uniqueIndex;not null" json:"request_id"`

	Status    ContractStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	StartDate time.Time      `json:"start_date"`
	EndDate   *time.Time     `json:"end_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Employer *Employer `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
	Provider *Provider `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	Request  *Request  `gorm:"foreignKey:RequestID" json:"request,omitempty"`
}
