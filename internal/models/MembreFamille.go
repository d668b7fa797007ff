package models

import (
	"gorm.io/gorm"
)

// MembreFamille exists only nested under an Enquete; the whole collection is
// replaced on every survey update, so rows never keep a stable identity.
type MembreFamille struct {
	gorm.Model

	Nom             string `json:"nom"`
	Age             int    `json:"age"`
	Sexe            string `json:"sexe"`
	LienFamilial    string `json:"lienFamilial"`
	NiveauEducation string `json:"niveauEducation"`
	LieuResidence   string `json:"lieuResidence"`
	AnneesResidence int    `json:"anneesResidence"`

	EnqueteID uint `json:"enqueteId" gorm:"index"`
}
