package models

import (
	"gorm.io/gorm"
)

// Commune belongs to a District; its name must be unique within that district.
type Commune struct {
	gorm.Model

	Nom        string   `json:"nom" binding:"required"`
	DistrictID uint     `json:"districtId" gorm:"index"`
	District   District `gorm:"foreignKey:DistrictID" json:"district,omitempty"`

	Fokontany []Fokontany `gorm:"foreignKey:CommuneID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"fokontany,omitempty"`
}
