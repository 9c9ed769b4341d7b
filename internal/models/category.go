package models

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(80);uniqueIndex;not null" json:"name"`
	Logo string `gorm:"type:text;uniqueIndex;not null" json:"logo"`

	Providers []Provider `gorm:"many2many:provider_categories" json:"providers,omitempty"`
	Requests  []Request  `gorm:"foreignKey:CategoryID" json:"requests,omitempty"`
}
