package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"enquete_peche/internal/config"
	"enquete_peche/internal/models"
)

// CreatePratique registers a fishing practice. A fisher may only have one
// practice per target species.
func CreatePratique(c *gin.Context) {
	var input struct {
		EspeceCible       string  `json:"especeCible" binding:"required"`
		TechniquePeche    string  `json:"techniquePeche"`
		FrequenceSortie   string  `json:"frequenceSortie"`
		QuantiteParSortie float64 `json:"quantiteParSortie"`
		PeriodePeche      string  `json:"periodePeche"`
		PecheurID         *uint   `json:"pecheurId"`
		EnqueteID         *uint   `json:"enqueteId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pecheur := resolvePecheur(c, input.PecheurID, input.EnqueteID)
	if pecheur == nil {
		return
	}

	var count int64
	config.DB.Model(&models.PratiquePeche{}).Where("pecheur_id = ? AND espece_cible = ?", pecheur.ID, input.EspeceCible).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pratique for this espece cible already exists for this pecheur"})
		return
	}

	pratique := models.PratiquePeche{
		EspeceCible:       input.EspeceCible,
		TechniquePeche:    input.TechniquePeche,
		FrequenceSortie:   input.FrequenceSortie,
		QuantiteParSortie: input.QuantiteParSortie,
		PeriodePeche:      input.PeriodePeche,
		PecheurID:         pecheur.ID,
	}
	if err := config.DB.Create(&pratique).Error; err != nil {
		logrus.WithError(err).Error("CreatePratique: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create pratique"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Pratique created", "data": pratique})
}

// ListPratiques lists practices, optionally filtered by fisher.
func ListPratiques(c *gin.Context) {
	q := config.DB.Model(&models.PratiquePeche{})
	if pid := c.Query("pecheurId"); pid != "" {
		q = q.Where("pecheur_id = ?", pid)
	}
	respondList[models.PratiquePeche](c, q, pageParam(c))
}

// GetPratique retrieves one practice.
func GetPratique(c *gin.Context) {
	var pratique models.PratiquePeche
	if err := config.DB.First(&pratique, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pratique not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": pratique})
}

// UpdatePratique patches a practice. Changing the species re-checks the
// one-practice-per-species rule against the fisher's other rows.
func UpdatePratique(c *gin.Context) {
	var pratique models.PratiquePeche
	if err := config.DB.First(&pratique, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pratique not found"})
		return
	}

	var input struct {
		EspeceCible       *string  `json:"especeCible"`
		TechniquePeche    *string  `json:"techniquePeche"`
		FrequenceSortie   *string  `json:"frequenceSortie"`
		QuantiteParSortie *float64 `json:"quantiteParSortie"`
		PeriodePeche      *string  `json:"periodePeche"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.EspeceCible != nil && *input.EspeceCible != pratique.EspeceCible {
		var count int64
		config.DB.Model(&models.PratiquePeche{}).
			Where("pecheur_id = ? AND espece_cible = ? AND id <> ?", pratique.PecheurID, *input.EspeceCible, pratique.ID).
			Count(&count)
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Pratique for this espece cible already exists for this pecheur"})
			return
		}
		pratique.EspeceCible = *input.EspeceCible
	}
	if input.TechniquePeche != nil {
		pratique.TechniquePeche = *input.TechniquePeche
	}
	if input.FrequenceSortie != nil {
		pratique.FrequenceSortie = *input.FrequenceSortie
	}
	if input.QuantiteParSortie != nil {
		pratique.QuantiteParSortie = *input.QuantiteParSortie
	}
	if input.PeriodePeche != nil {
		pratique.PeriodePeche = *input.PeriodePeche
	}

	if err := config.DB.Save(&pratique).Error; err != nil {
		logrus.WithError(err).Error("UpdatePratique: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pratique"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pratique updated", "data": pratique})
}

// DeletePratique removes one practice.
func DeletePratique(c *gin.Context) {
	var pratique models.PratiquePeche
	if err := config.DB.First(&pratique, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pratique not found"})
		return
	}
	if err := config.DB.Delete(&pratique).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pratique"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pratique deleted"})
}
