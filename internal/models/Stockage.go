package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Stockage is one storage method of a collector profile.
type Stockage struct {
	gorm.Model

	MethodeStockage     string                      `json:"methodeStockage"`
	DureeStockage       string                      `json:"dureeStockage"`
	CapaciteStockage    float64                     `json:"capaciteStockage"` // kg
	ProblemesRencontres datatypes.JSONSlice[string] `json:"problemesRencontres"`

	CollecteurID uint `json:"collecteurId" gorm:"index"`
}
