package models

import (
	"github.com/google/uuid"
)

// Employer is the role-record under which a user posts service requests and
// awards contracts. It shares its primary key with the owning user.
type Employer struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Score  float64   `gorm:"default:0" json:"score"`

	User      *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Requests  []Request  `gorm:"foreignKey:EmployerID" json:"requests,omitempty"`
	Contracts []Contract `gorm:"foreignKey:EmployerID" json:"contracts,omitempty"`
}
