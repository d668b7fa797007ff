package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProduitAchete is one product type a collector buys. A collector has at
// most one row per typeProduit; the handlers check this before every write.
// The three price fields support the COVID-era price comparison on the
// dashboard.
type ProduitAchete struct {
	gorm.Model

	TypeProduit           string                      `json:"typeProduit" binding:"required"`
	QuantiteAnnuelle      float64                     `json:"quantiteAnnuelle"` // kg
	PrixAchatAvantCovid   float64                     `json:"prixAchatAvantCovid"`
	PrixAchatPendantCovid float64                     `json:"prixAchatPendantCovid"`
	PrixAchatApresCovid   float64                     `json:"prixAchatApresCovid"`
	EspecesCollectees     datatypes.JSONSlice[string] `json:"especesCollectees"`

	CollecteurID uint `json:"collecteurId" gorm:"index"`
}
