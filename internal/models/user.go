package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email string    `gorm:"uniqueIndex;not null" json:"email"`

	Password string `gorm:"not null" json:"-"`
	Role     Role   `gorm:"type:varchar(20);not null;index" json:"role"`

	FirstName string `gorm:"type:varchar(80);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(80);not null" json:"last_name"`

	// Address
	Street     string `gorm:"type:varchar(120)" json:"street"`
	HomeNumber string `gorm:"type:varchar(20)" json:"home_number"`
	MoreInfo   string `gorm:"type:varchar(120)" json:"more_info"`
	ComunaID   *uint  `gorm:"index" json:"comuna_id,omitempty"`

	// Chilean national id
	Rut       string `gorm:"type:varchar(10)" json:"rut"`
	RutSerial string `gorm:"type:varchar(20)" json:"rut_serial"`

	ProfileImg string `gorm:"type:text" json:"profile_img"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Comuna *Comuna `gorm:"foreignKey:ComunaID" json:"comuna,omitempty"`

	// Every user carries both role-records (employers.user_id -> users.id,
	// providers.user_id -> users.id), created together at registration.
	Employer *Employer `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"employer,omitempty"`
	Provider *Provider `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"provider,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}
