package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"enquete_peche/internal/config"
	"enquete_peche/internal/models"
)

// resolveCollecteur finds the owning collector profile either directly by id
// or through the survey linkage. Returns nil after writing the error
// response.
func resolveCollecteur(c *gin.Context, collecteurID, enqueteID *uint) *models.Collecteur {
	var collecteur models.Collecteur
	switch {
	case collecteurID != nil:
		if err := config.DB.First(&collecteur, *collecteurID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Collecteur not found"})
			return nil
		}
	case enqueteID != nil:
		if err := config.DB.Where("enquete_id = ?", *enqueteID).First(&collecteur).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Collecteur not found"})
			return nil
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "collecteurId or enqueteId is required"})
		return nil
	}
	return &collecteur
}

// ListCollecteurs lists collector profiles.
func ListCollecteurs(c *gin.Context) {
	q := config.DB.Model(&models.Collecteur{})
	respondList[models.Collecteur](c, q, pageParam(c))
}

// GetCollecteur retrieves one collector profile with all of its child
// collections.
func GetCollecteur(c *gin.Context) {
	var collecteur models.Collecteur
	err := config.DB.
		Preload("Produits").
		Preload("Stockages").
		Preload("Distributions").
		Preload("Contrats").
		First(&collecteur, c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Collecteur not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": collecteur})
}

// UpdateCollecteur patches the scalar fields of a collector profile. The
// list-valued fields are replaced wholesale when supplied, never merged.
func UpdateCollecteur(c *gin.Context) {
	var collecteur models.Collecteur
	if err := config.DB.First(&collecteur, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Collecteur not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch collecteur"})
		}
		return
	}

	var input struct {
		AnneesExperience *int      `json:"anneesExperience"`
		ZoneCollecte     *string   `json:"zoneCollecte"`
		LieuxCollecte    *[]string `json:"lieuxCollecte"`
		MoyensTransport  *[]string `json:"moyensTransport"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.AnneesExperience != nil {
		collecteur.AnneesExperience = *input.AnneesExperience
	}
	if input.ZoneCollecte != nil {
		collecteur.ZoneCollecte = *input.ZoneCollecte
	}
	if input.LieuxCollecte != nil {
		collecteur.LieuxCollecte = datatypes.NewJSONSlice(*input.LieuxCollecte)
	}
	if input.MoyensTransport != nil {
		collecteur.MoyensTransport = datatypes.NewJSONSlice(*input.MoyensTransport)
	}

	if err := config.DB.Save(&collecteur).Error; err != nil {
		logrus.WithError(err).Error("UpdateCollecteur: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update collecteur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Collecteur updated", "data": collecteur})
}
