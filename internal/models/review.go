package models

import (
	"time"

	"github.com/google/uuid"
)

// TargetRole says which side of the contract a review rates.
type TargetRole string

const (
	TargetProvider TargetRole = "provider"
	TargetEmployer TargetRole = "employer"
)

type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ContractID uint      `gorm:"not null;uniqueIndex:idx_reviews_contract_author" json:"contract_id"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_contract_author" json:"author_id"`

	TargetUserID uuid.UUID  `gorm:"type:uuid;index;not null" json:"target_user_id"`
	TargetRole   TargetRole `gorm:"type:varchar(10);not null" json:"target_role"`

	Score float64 `gorm:"not null" json:"score"` // 1-5
	Body  string  `gorm:"type:text" json:"body"`

	CreatedAt time.Time `json:"created_at"`

	Contract *Contract `gorm:"foreignKey:ContractID" json:"contract,omitempty"`
	Author   *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
