package models

import (
	"gorm.io/gorm"
)

// Pecheur is the fisher profile of a survey (1:1 with Enquete). It owns the
// fishing practices, equipment, boats and commercial circuits.
type Pecheur struct {
	gorm.Model

	EnqueteID uint `json:"enqueteId" gorm:"uniqueIndex"`

	AnneesExperience int    `json:"anneesExperience"`
	TypePeche        string `json:"typePeche"` // "traditionnelle", "artisanale", "industrielle"

	Pratiques     []PratiquePeche     `gorm:"foreignKey:PecheurID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"pratiques,omitempty"`
	Equipements   []EquipementPeche   `gorm:"foreignKey:PecheurID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"equipements,omitempty"`
	Embarcations  []EmbarcationPeche  `gorm:"foreignKey:PecheurID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"embarcations,omitempty"`
	Circuits      []CircuitCommercial `gorm:"foreignKey:PecheurID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"circuits,omitempty"`
}
