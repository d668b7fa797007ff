package models

import (
	"gorm.io/gorm"
)

// DestinationCommerciale is one name+percentage split of a commercial
// circuit. The set is replaced wholesale whenever the circuit is saved with
// a destinations array.
type DestinationCommerciale struct {
	gorm.Model

	Nom         string  `json:"nom"`
	Pourcentage float64 `json:"pourcentage"`

	CircuitID uint `json:"circuitId" gorm:"index"`
}
