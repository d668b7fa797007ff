package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"enquete_peche/internal/config"
	"enquete_peche/internal/models"
)

// resolvePecheur finds the owning fisher profile either directly by id or
// through the survey linkage. Returns nil after writing the error response.
func resolvePecheur(c *gin.Context, pecheurID, enqueteID *uint) *models.Pecheur {
	var pecheur models.Pecheur
	switch {
	case pecheurID != nil:
		if err := config.DB.First(&pecheur, *pecheurID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pecheur not found"})
			return nil
		}
	case enqueteID != nil:
		if err := config.DB.Where("enquete_id = ?", *enqueteID).First(&pecheur).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pecheur not found"})
			return nil
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "pecheurId or enqueteId is required"})
		return nil
	}
	return &pecheur
}

// ListPecheurs lists fisher profiles.
func ListPecheurs(c *gin.Context) {
	q := config.DB.Model(&models.Pecheur{})
	respondList[models.Pecheur](c, q, pageParam(c))
}

// GetPecheur retrieves one fisher profile with all of its child collections.
func GetPecheur(c *gin.Context) {
	var pecheur models.Pecheur
	err := config.DB.
		Preload("Pratiques").
		Preload("Equipements").
		Preload("Embarcations").
		Preload("Circuits.Destinations").
		First(&pecheur, c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pecheur not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": pecheur})
}

// UpdatePecheur patches the scalar fields of a fisher profile.
func UpdatePecheur(c *gin.Context) {
	var pecheur models.Pecheur
	if err := config.DB.First(&pecheur, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pecheur not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pecheur"})
		}
		return
	}

	var input struct {
		AnneesExperience *int    `json:"anneesExperience"`
		TypePeche        *string `json:"typePeche"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.AnneesExperience != nil {
		pecheur.AnneesExperience = *input.AnneesExperience
	}
	if input.TypePeche != nil {
		pecheur.TypePeche = *input.TypePeche
	}

	if err := config.DB.Save(&pecheur).Error; err != nil {
		logrus.WithError(err).Error("UpdatePecheur: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pecheur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pecheur updated", "data": pecheur})
}
