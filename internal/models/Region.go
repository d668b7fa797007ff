package models

import (
	"gorm.io/gorm"
)

// Region is the top level of the Malagasy administrative hierarchy.
// Name uniqueness is checked by the handlers before any write.
type Region struct {
	gorm.Model

	Nom string `json:"nom" binding:"required"`

	Districts []District `gorm:"foreignKey:RegionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"districts,omitempty"`
}
