package models

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestActive RequestStatus = "active"
	RequestPaused RequestStatus = "paused"
	RequestClosed RequestStatus = "closed"
)

// Request is an employer's posted need for a service. Category and Comuna
// are fixed at creation.
type Request struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(120);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Service address
	Street     string `gorm:"type:varchar(120)" json:"street"`
	HomeNumber string `gorm:"type:varchar(20)" json:"home_number"`
	MoreInfo   string `gorm:"type:varchar(120)" json:"more_info"`

	Status RequestStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`

	EmployerID uuid.UUID `gorm:"type:uuid;index;not null" json:"employer_id"`
	CategoryID uint      `gorm:"index;not null" json:"category_id"`
	ComunaID   uint      `gorm:"index;not null" json:"comuna_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Employer *Employer `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Comuna   *Comuna   `gorm:"foreignKey:ComunaID" json:"comuna,omitempty"`
	Offers   []Offer   `gorm:"foreignKey:RequestID" json:"offers,omitempty"`
	Contract *Contract `gorm:"foreignKey:RequestID" json:"contract,omitempty"`
}
