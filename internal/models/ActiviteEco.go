package models

import (
	"gorm.io/gorm"
)

// ActiviteEco records an economic activity of the household other than
// fishing or collecting.
type ActiviteEco struct {
	gorm.Model

	TypeActivite  string  `json:"typeActivite"`
	Description   string  `json:"description"`
	RevenuMensuel float64 `json:"revenuMensuel"`
	Saisonnier    bool    `json:"saisonnier"`

	EnqueteID uint `json:"enqueteId" gorm:"index"`
}
