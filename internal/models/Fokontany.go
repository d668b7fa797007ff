package models

import (
	"gorm.io/gorm"
)

// Fokontany is the village-level unit below a Commune.
type Fokontany struct {
	gorm.Model

	Nom       string  `json:"nom" binding:"required"`
	CommuneID uint    `json:"communeId" gorm:"index"`
	Commune   Commune `gorm:"foreignKey:CommuneID" json:"commune,omitempty"`

	Secteurs []Secteur `gorm:"foreignKey:FokontanyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"secteurs,omitempty"`
}
