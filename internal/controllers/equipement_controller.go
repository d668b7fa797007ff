package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"enquete_peche/internal/config"
	"enquete_peche/internal/models"
)

// CreateEquipement registers an equipment line on a fisher profile.
func CreateEquipement(c *gin.Context) {
	var input struct {
		TypeEquipement  string  `json:"typeEquipement" binding:"required"`
		Quantite        int     `json:"quantite"`
		EtatEquipement  string  `json:"etatEquipement"`
		ModeAcquisition string  `json:"modeAcquisition"`
		CoutAcquisition float64 `json:"coutAcquisition"`
		PecheurID       *uint   `json:"pecheurId"`
		EnqueteID       *uint   `json:"enqueteId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pecheur := resolvePecheur(c, input.PecheurID, input.EnqueteID)
	if pecheur == nil {
		return
	}

	equipement := models.EquipementPeche{
		TypeEquipement:  input.TypeEquipement,
		Quantite:        input.Quantite,
		EtatEquipement:  input.EtatEquipement,
		ModeAcquisition: input.ModeAcquisition,
		CoutAcquisition: input.CoutAcquisition,
		PecheurID:       pecheur.ID,
	}
	if err := config.DB.Create(&equipement).Error; err != nil {
		logrus.WithError(err).Error("CreateEquipement: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create equipement"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Equipement created", "data": equipement})
}

// ListEquipements lists equipment, optionally filtered by fisher.
func ListEquipements(c *gin.Context) {
	q := config.DB.Model(&models.EquipementPeche{})
	if pid := c.Query("pecheurId"); pid != "" {
		q = q.Where("pecheur_id = ?", pid)
	}
	respondList[models.EquipementPeche](c, q, pageParam(c))
}

// GetEquipement retrieves one equipment line.
func GetEquipement(c *gin.Context) {
	var equipement models.EquipementPeche
	if err := config.DB.First(&equipement, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Equipement not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": equipement})
}

// UpdateEquipement patches an equipment line.
func UpdateEquipement(c *gin.Context) {
	var equipement models.EquipementPeche
	if err := config.DB.First(&equipement, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Equipement not found"})
		return
	}

	var input struct {
		TypeEquipement  *string  `json:"typeEquipement"`
		Quantite        *int     `json:"quantite"`
		EtatEquipement  *string  `json:"etatEquipement"`
		ModeAcquisition *string  `json:"modeAcquisition"`
		CoutAcquisition *float64 `json:"coutAcquisition"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.TypeEquipement != nil {
		equipement.TypeEquipement = *input.TypeEquipement
	}
	if input.Quantite != nil {
		equipement.Quantite = *input.Quantite
	}
	if input.EtatEquipement != nil {
		equipement.EtatEquipement = *input.EtatEquipement
	}
	if input.ModeAcquisition != nil {
		equipement.ModeAcquisition = *input.ModeAcquisition
	}
	if input.CoutAcquisition != nil {
		equipement.CoutAcquisition = *input.CoutAcquisition
	}

	if err := config.DB.Save(&equipement).Error; err != nil {
		logrus.WithError(err).Error("UpdateEquipement: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update equipement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Equipement updated", "data": equipement})
}

// DeleteEquipement removes one equipment line.
func DeleteEquipement(c *gin.Context) {
	var equipement models.EquipementPeche
	if err := config.DB.First(&equipement, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Equipement not found"})
		return
	}
	if err := config.DB.Delete(&equipement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete equipement"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Equipement deleted"})
}
