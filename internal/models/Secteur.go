package models

import (
	"gorm.io/gorm"
)

// Secteur is the finest-grained geographic unit; surveys attach here.
type Secteur struct {
	gorm.Model

	Nom         string    `json:"nom" binding:"required"`
	FokontanyID uint      `json:"fokontanyId" gorm:"index"`
	Fokontany   Fokontany `gorm:"foreignKey:FokontanyID" json:"fokontany,omitempty"`

	// Optional boundary stored as WKB (SRID 4326); the API speaks GeoJSON.
	Geometrie []byte `gorm:"type:bytea" json:"-"`

	Enquetes []Enquete `gorm:"foreignKey:SecteurID" json:"enquetes,omitempty"`
}
