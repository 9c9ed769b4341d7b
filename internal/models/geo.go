package models

// Region and Comuna model the two-level Chilean administrative hierarchy
// used for location filtering.

type Region struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(80);uniqueIndex;not null" json:"name"`

	Comunas []Comuna `gorm:"foreignKey:RegionID" json:"comunas,omitempty"`
}

type Comuna struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(80);uniqueIndex;not null" json:"name"`
	RegionID uint   `gorm:"index;not null" json:"region_id"`

	Region *Region `gorm:"foreignKey:RegionID" json:"region,omitempty"`
}
