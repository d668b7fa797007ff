package models

import (
	"gorm.io/gorm"
)

// PratiquePeche describes how a fisher targets one species. A fisher has at
// most one practice row per especeCible; the handlers check this before
// every write.
type PratiquePeche struct {
	gorm.Model

	EspeceCible       string  `json:"especeCible" binding:"required"`
	TechniquePeche    string  `json:"techniquePeche"`
	FrequenceSortie   string  `json:"frequenceSortie"`
	QuantiteParSortie float64 `json:"quantiteParSortie"` // kg
	PeriodePeche      string  `json:"periodePeche"`

	PecheurID uint `json:"pecheurId" gorm:"index"`
}
