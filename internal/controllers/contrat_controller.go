package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"enquete_peche/internal/config"
	"enquete_peche/internal/models"
)

// CreateContrat registers a buyer contract on a collector profile.
func CreateContrat(c *gin.Context) {
	var input struct {
		NomAcheteur    string `json:"nomAcheteur" binding:"required"`
		TypeContrat    string `json:"typeContrat"`
		DureeContrat   string `json:"dureeContrat"`
		ConditionsPrix string `json:"conditionsPrix"`
		CollecteurID   *uint  `json:"collecteurId"`
		EnqueteID      *uint  `json:"enqueteId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collecteur := resolveCollecteur(c, input.CollecteurID, input.EnqueteID)
	if collecteur == nil {
		return
	}

	contrat := models.ContratAcheteur{
		NomAcheteur:    input.NomAcheteur,
		TypeContrat:    input.TypeContrat,
		DureeContrat:   input.DureeContrat,
		ConditionsPrix: input.ConditionsPrix,
		CollecteurID:   collecteur.ID,
	}
	if err := config.DB.Create(&contrat).Error; err != nil {
		logrus.WithError(err).Error("CreateContrat: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contrat"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Contrat created", "data": contrat})
}

// ListContrats lists buyer contracts, optionally filtered by collector.
func ListContrats(c *gin.Context) {
	q := config.DB.Model(&models.ContratAcheteur{})
	if cid := c.Query("collecteurId"); cid != "" {
		q = q.Where("collecteur_id = ?", cid)
	}
	respondList[models.ContratAcheteur](c, q, pageParam(c))
}

// GetContrat retrieves one buyer contract.
func GetContrat(c *gin.Context) {
	var contrat models.ContratAcheteur
	if err := config.DB.First(&contrat, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contrat not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": contrat})
}

// UpdateContrat patches a buyer contract.
func UpdateContrat(c *gin.Context) {
	var contrat models.ContratAcheteur
	if err := config.DB.First(&contrat, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contrat not found"})
		return
	}

	var input struct {
		NomAcheteur    *string `json:"nomAcheteur"`
		TypeContrat    *string `json:"typeContrat"`
		DureeContrat   *string `json:"dureeContrat"`
		ConditionsPrix *string `json:"conditionsPrix"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.NomAcheteur != nil {
		contrat.NomAcheteur = *input.NomAcheteur
	}
	if input.TypeContrat != nil {
		contrat.TypeContrat = *input.TypeContrat
	}
	if input.DureeContrat != nil {
		contrat.DureeContrat = *input.DureeContrat
	}
	if input.ConditionsPrix != nil {
		contrat.ConditionsPrix = *input.ConditionsPrix
	}

	if err := config.DB.Save(&contrat).Error; err != nil {
		logrus.WithError(err).Error("UpdateContrat: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contrat"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contrat updated", "data": contrat})
}

// DeleteContrat removes one buyer contract.
func DeleteContrat(c *gin.Context) {
	var contrat models.ContratAcheteur
	if err := config.DB.First(&contrat, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contrat not found"})
		return
	}
	if err := config.DB.Delete(&contrat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contrat"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contrat deleted"})
}
