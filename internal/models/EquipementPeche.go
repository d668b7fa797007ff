package models

import (
	"gorm.io/gorm"
)

// EquipementPeche is one equipment line of a fisher profile.
type EquipementPeche struct {
	gorm.Model

	TypeEquipement  string  `json:"typeEquipement"`
	Quantite        int     `json:"quantite"`
	EtatEquipement  string  `json:"etatEquipement"`
	ModeAcquisition string  `json:"modeAcquisition"`
	CoutAcquisition float64 `json:"coutAcquisition"`

	PecheurID uint `json:"pecheurId" gorm:"index"`
}
