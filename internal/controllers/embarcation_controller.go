package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"enquete_peche/internal/config"
	"enquete_peche/internal/models"
)

// CreateEmbarcation registers a boat on a fisher profile. Proprietaire is a
// tri-state; statutPropriete and typeBois stay free-form, their relevance is
// decided in the form, not here.
func CreateEmbarcation(c *gin.Context) {
	var input struct {
		TypeEmbarcation       string `json:"typeEmbarcation" binding:"required"`
		Proprietaire          *bool  `json:"proprietaire"`
		StatutPropriete       string `json:"statutPropriete"`
		MateriauxConstruction string `json:"materiauxConstruction"`
		TypeBois              string `json:"typeBois"`
		ModeAcquisition       string `json:"modeAcquisition"`
		NombrePlaces          int    `json:"nombrePlaces"`
		AnneeAcquisition      int    `json:"anneeAcquisition"`
		PecheurID             *uint  `json:"pecheurId"`
		EnqueteID             *uint  `json:"enqueteId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pecheur := resolvePecheur(c, input.PecheurID, input.EnqueteID)
	if pecheur == nil {
		return
	}

	embarcation := models.EmbarcationPeche{
		TypeEmbarcation:       input.TypeEmbarcation,
		Proprietaire:          input.Proprietaire,
		StatutPropriete:       input.StatutPropriete,
		MateriauxConstruction: input.MateriauxConstruction,
		TypeBois:              input.TypeBois,
		ModeAcquisition:       input.ModeAcquisition,
		NombrePlaces:          input.NombrePlaces,
		AnneeAcquisition:      input.AnneeAcquisition,
		PecheurID:             pecheur.ID,
	}
	if err := config.DB.Create(&embarcation).Error; err != nil {
		logrus.WithError(err).Error("CreateEmbarcation: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create embarcation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Embarcation created", "data": embarcation})
}

// ListEmbarcations lists boats, optionally filtered by fisher.
func ListEmbarcations(c *gin.Context) {
	q := config.DB.Model(&models.EmbarcationPeche{})
	if pid := c.Query("pecheurId"); pid != "" {
		q = q.Where("pecheur_id = ?", pid)
	}
	respondList[models.EmbarcationPeche](c, q, pageParam(c))
}

// GetEmbarcation retrieves one boat.
func GetEmbarcation(c *gin.Context) {
	var embarcation models.EmbarcationPeche
	if err := config.DB.First(&embarcation, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Embarcation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": embarcation})
}

// UpdateEmbarcation patches a boat.
func UpdateEmbarcation(c *gin.Context) {
	var embarcation models.EmbarcationPeche
	if err := config.DB.First(&embarcation, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Embarcation not found"})
		return
	}

	var input struct {
		TypeEmbarcation       *string `json:"typeEmbarcation"`
		Proprietaire          *bool   `json:"proprietaire"`
		StatutPropriete       *string `json:"statutPropriete"`
		MateriauxConstruction *string `json:"materiauxConstruction"`
		TypeBois              *string `json:"typeBois"`
		ModeAcquisition       *string `json:"modeAcquisition"`
		NombrePlaces          *int    `json:"nombrePlaces"`
		AnneeAcquisition      *int    `json:"anneeAcquisition"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.TypeEmbarcation != nil {
		embarcation.TypeEmbarcation = *input.TypeEmbarcation
	}
	if input.Proprietaire != nil {
		embarcation.Proprietaire = input.Proprietaire
	}
	if input.StatutPropriete != nil {
		embarcation.StatutPropriete = *input.StatutPropriete
	}
	if input.MateriauxConstruction != nil {
		embarcation.MateriauxConstruction = *input.MateriauxConstruction
	}
	if input.TypeBois != nil {
		embarcation.TypeBois = *input.TypeBois
	}
	if input.ModeAcquisition != nil {
		embarcation.ModeAcquisition = *input.ModeAcquisition
	}
	if input.NombrePlaces != nil {
		embarcation.NombrePlaces = *input.NombrePlaces
	}
	if input.AnneeAcquisition != nil {
		embarcation.AnneeAcquisition = *input.AnneeAcquisition
	}

	if err := config.DB.Save(&embarcation).Error; err != nil {
		logrus.WithError(err).Error("UpdateEmbarcation: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update embarcation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Embarcation updated", "data": embarcation})
}

// DeleteEmbarcation removes one boat.
func DeleteEmbarcation(c *gin.Context) {
	var embarcation models.EmbarcationPeche
	if err := config.DB.First(&embarcation, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Embarcation not found"})
		return
	}
	if err := config.DB.Delete(&embarcation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete embarcation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Embarcation deleted"})
}
