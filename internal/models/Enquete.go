package models

import (
	"time"

	"gorm.io/gorm"
)

// Enquete is the aggregate root of one household survey. It owns its family
// members and economic activities, and optionally links one fisher and/or
// one collector profile depending on the respondent flags.
type Enquete struct {
	gorm.Model

	NomRepondant          string    `json:"nomRepondant" binding:"required"`
	Age                   int       `json:"age"`
	Sexe                  string    `json:"sexe"`
	SituationMatrimoniale string    `json:"situationMatrimoniale"`
	NiveauEducation       string    `json:"niveauEducation"`
	DateEnquete           time.Time `json:"dateEnquete"`

	EstPecheur    bool `json:"estPecheur"`
	EstCollecteur bool `json:"estCollecteur"`
	TouteActivite bool `json:"touteActivite"`

	EnqueteurID *uint      `json:"enqueteurId" gorm:"index"`
	Enqueteur   *Enqueteur `gorm:"foreignKey:EnqueteurID" json:"enqueteur,omitempty"`
	SecteurID   *uint      `json:"secteurId" gorm:"index"`
	Secteur     *Secteur   `gorm:"foreignKey:SecteurID" json:"secteur,omitempty"`

	Membres   []MembreFamille `gorm:"foreignKey:EnqueteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"membresFamille,omitempty"`
	Activites []ActiviteEco   `gorm:"foreignKey:EnqueteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"activitesEco,omitempty"`

	Pecheur    *Pecheur    `gorm:"foreignKey:EnqueteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"pecheur,omitempty"`
	Collecteur *Collecteur `gorm:"foreignKey:EnqueteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"collecteur,omitempty"`
}
