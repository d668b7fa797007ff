package models

import (
	"gorm.io/gorm"
)

// District belongs to a Region; its name must be unique within that region.
type District struct {
	gorm.Model

	Nom      string `json:"nom" binding:"required"`
	RegionID uint   `json:"regionId" gorm:"index"`
	Region   Region `gorm:"foreignKey:RegionID" json:"region,omitempty"`

	Communes []Commune `gorm:"foreignKey:DistrictID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"communes,omitempty"`
}
