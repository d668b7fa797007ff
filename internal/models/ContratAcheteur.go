package models

import (
	"gorm.io/gorm"
)

// ContratAcheteur is one buyer contract of a collector profile.
type ContratAcheteur struct {
	gorm.Model

	NomAcheteur    string `json:"nomAcheteur"`
	TypeContrat    string `json:"typeContrat"`
	DureeContrat   string `json:"dureeContrat"`
	ConditionsPrix string `json:"conditionsPrix"`

	CollecteurID uint `json:"collecteurId" gorm:"index"`
}
