package models

import (
	"gorm.io/gorm"
)

// CircuitCommercial is one commercial sales arrangement of a fisher, with a
// percentage split over named destinations.
type CircuitCommercial struct {
	gorm.Model

	TypeProduit string  `json:"typeProduit"`
	ModeVente   string  `json:"modeVente"`
	PrixMoyen   float64 `json:"prixMoyen"`

	PecheurID uint `json:"pecheurId" gorm:"index"`

	Destinations []DestinationCommerciale `gorm:"foreignKey:CircuitID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"destinations,omitempty"`
}
