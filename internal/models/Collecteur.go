package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Collecteur is the collector/trader profile of a survey (1:1 with Enquete).
// List-valued fields are stored as JSON and replaced wholesale on save.
type Collecteur struct {
	gorm.Model

	EnqueteID uint `json:"enqueteId" gorm:"uniqueIndex"`

	AnneesExperience int                         `json:"anneesExperience"`
	ZoneCollecte     string                      `json:"zoneCollecte"`
	LieuxCollecte    datatypes.JSONSlice[string] `json:"lieuxCollecte"`
	MoyensTransport  datatypes.JSONSlice[string] `json:"moyensTransport"`

	Produits      []ProduitAchete   `gorm:"foreignKey:CollecteurID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"produits,omitempty"`
	Stockages     []Stockage        `gorm:"foreignKey:CollecteurID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"stockages,omitempty"`
	Distributions []Distribution    `gorm:"foreignKey:CollecteurID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"distributions,omitempty"`
	Contrats      []ContratAcheteur `gorm:"foreignKey:CollecteurID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"contrats,omitempty"`
}
