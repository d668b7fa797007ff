package models

import (
	"gorm.io/gorm"
)

// Enqueteur is a field surveyor identity, referenced by surveys but never
// owned by them.
type Enqueteur struct {
	gorm.Model

	Nom       string `json:"nom" binding:"required" gorm:"unique"`
	Code      string `json:"code" binding:"required" gorm:"unique"`
	// Email is optional, so uniqueness is enforced in the handlers rather
	// than by a column index that would reject two empty values.
	Email     string `json:"email"`
	Telephone string `json:"telephone"`

	Enquetes []Enquete `gorm:"foreignKey:EnqueteurID" json:"enquetes,omitempty"`
}
