package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Distribution is one distribution channel of a collector profile.
type Distribution struct {
	gorm.Model

	CanalDistribution  string                      `json:"canalDistribution"`
	DestinationProduit string                      `json:"destinationProduit"`
	MoyensTransport    datatypes.JSONSlice[string] `json:"moyensTransport"`
	FrequenceLivraison string                      `json:"frequenceLivraison"`

	CollecteurID uint `json:"collecteurId" gorm:"index"`
}
