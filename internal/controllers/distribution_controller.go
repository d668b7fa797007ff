package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"enquete_peche/internal/config"
	"enquete_peche/internal/models"
)

// CreateDistribution registers a distribution channel on a collector
// profile.
func CreateDistribution(c *gin.Context) {
	var input struct {
		CanalDistribution  string   `json:"canalDistribution" binding:"required"`
		DestinationProduit string   `json:"destinationProduit"`
		MoyensTransport    []string `json:"moyensTransport"`
		FrequenceLivraison string   `json:"frequenceLivraison"`
		CollecteurID       *uint    `json:"collecteurId"`
		EnqueteID          *uint    `json:"enqueteId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collecteur := resolveCollecteur(c, input.CollecteurID, input.EnqueteID)
	if collecteur == nil {
		return
	}

	distribution := models.Distribution{
		CanalDistribution:  input.CanalDistribution,
		DestinationProduit: input.DestinationProduit,
		MoyensTransport:    datatypes.NewJSONSlice(input.MoyensTransport),
		FrequenceLivraison: input.FrequenceLivraison,
		CollecteurID:       collecteur.ID,
	}
	if err := config.DB.Create(&distribution).Error; err != nil {
		logrus.WithError(err).Error("CreateDistribution: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create distribution"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Distribution created", "data": distribution})
}

// ListDistributions lists distribution channels, optionally filtered by
// collector.
func ListDistributions(c *gin.Context) {
	q := config.DB.Model(&models.Distribution{})
	if cid := c.Query("collecteurId"); cid != "" {
		q = q.Where("collecteur_id = ?", cid)
	}
	respondList[models.Distribution](c, q, pageParam(c))
}

// GetDistribution retrieves one distribution channel.
func GetDistribution(c *gin.Context) {
	var distribution models.Distribution
	if err := config.DB.First(&distribution, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Distribution not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": distribution})
}

// UpdateDistribution patches a distribution channel; the transport list is
// replaced wholesale when supplied.
func UpdateDistribution(c *gin.Context) {
	var distribution models.Distribution
	if err := config.DB.First(&distribution, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Distribution not found"})
		return
	}

	var input struct {
		CanalDistribution  *string   `json:"canalDistribution"`
		DestinationProduit *string   `json:"destinationProduit"`
		MoyensTransport    *[]string `json:"moyensTransport"`
		FrequenceLivraison *string   `json:"frequenceLivraison"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.CanalDistribution != nil {
		distribution.CanalDistribution = *input.CanalDistribution
	}
	if input.DestinationProduit != nil {
		distribution.DestinationProduit = *input.DestinationProduit
	}
	if input.MoyensTransport != nil {
		distribution.MoyensTransport = datatypes.NewJSONSlice(*input.MoyensTransport)
	}
	if input.FrequenceLivraison != nil {
		distribution.FrequenceLivraison = *input.FrequenceLivraison
	}

	if err := config.DB.Save(&distribution).Error; err != nil {
		logrus.WithError(err).Error("UpdateDistribution: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update distribution"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Distribution updated", "data": distribution})
}

// DeleteDistribution removes one distribution channel.
func DeleteDistribution(c *gin.Context) {
	var distribution models.Distribution
	if err := config.DB.First(&distribution, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Distribution not found"})
		return
	}
	if err := config.DB.Delete(&distribution).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete distribution"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Distribution deleted"})
}
