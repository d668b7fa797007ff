package models

import (
	"gorm.io/gorm"
)

// EmbarcationPeche is a boat of a fisher profile. Proprietaire is a
// tri-state: nil means unanswered, false makes StatutPropriete relevant.
// TypeBois only applies when MateriauxConstruction mentions wood; that
// gating lives in the UI, not here.
type EmbarcationPeche struct {
	gorm.Model

	TypeEmbarcation       string `json:"typeEmbarcation"`
	Proprietaire          *bool  `json:"proprietaire"`
	StatutPropriete       string `json:"statutPropriete"`
	MateriauxConstruction string `json:"materiauxConstruction"`
	TypeBois              string `json:"typeBois"`
	ModeAcquisition       string `json:"modeAcquisition"`
	NombrePlaces          int    `json:"nombrePlaces"`
	AnneeAcquisition      int    `json:"anneeAcquisition"`

	PecheurID uint `json:"pecheurId" gorm:"index"`
}
