package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"enquete_peche/internal/config"
	"enquete_peche/internal/models"
)

// CreateStockage registers a storage record on a collector profile.
func CreateStockage(c *gin.Context) {
	var input struct {
		MethodeStockage     string   `json:"methodeStockage" binding:"required"`
		DureeStockage       string   `json:"dureeStockage"`
		CapaciteStockage    float64  `json:"capaciteStockage"`
		ProblemesRencontres []string `json:"problemesRencontres"`
		CollecteurID        *uint    `json:"collecteurId"`
		EnqueteID           *uint    `json:"enqueteId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collecteur := resolveCollecteur(c, input.CollecteurID, input.EnqueteID)
	if collecteur == nil {
		return
	}

	stockage := models.Stockage{
		MethodeStockage:     input.MethodeStockage,
		DureeStockage:       input.DureeStockage,
		CapaciteStockage:    input.CapaciteStockage,
		ProblemesRencontres: datatypes.NewJSONSlice(input.ProblemesRencontres),
		CollecteurID:        collecteur.ID,
	}
	if err := config.DB.Create(&stockage).Error; err != nil {
		logrus.WithError(err).Error("CreateStockage: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create stockage"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Stockage created", "data": stockage})
}

// ListStockages lists storage records, optionally filtered by collector.
func ListStockages(c *gin.Context) {
	q := config.DB.Model(&models.Stockage{})
	if cid := c.Query("collecteurId"); cid != "" {
		q = q.Where("collecteur_id = ?", cid)
	}
	respondList[models.Stockage](c, q, pageParam(c))
}

// GetStockage retrieves one storage record.
func GetStockage(c *gin.Context) {
	var stockage models.Stockage
	if err := config.DB.First(&stockage, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stockage not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stockage})
}

// UpdateStockage patches a storage record; the problem list is replaced
// wholesale when supplied.
func UpdateStockage(c *gin.Context) {
	var stockage models.Stockage
	if err := config.DB.First(&stockage, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stockage not found"})
		return
	}

	var input struct {
		MethodeStockage     *string   `json:"methodeStockage"`
		DureeStockage       *string   `json:"dureeStockage"`
		CapaciteStockage    *float64  `json:"capaciteStockage"`
		ProblemesRencontres *[]string `json:"problemesRencontres"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.MethodeStockage != nil {
		stockage.MethodeStockage = *input.MethodeStockage
	}
	if input.DureeStockage != nil {
		stockage.DureeStockage = *input.DureeStockage
	}
	if input.CapaciteStockage != nil {
		stockage.CapaciteStockage = *input.CapaciteStockage
	}
	if input.ProblemesRencontres != nil {
		stockage.ProblemesRencontres = datatypes.NewJSONSlice(*input.ProblemesRencontres)
	}

	if err := config.DB.Save(&stockage).Error; err != nil {
		logrus.WithError(err).Error("UpdateStockage: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stockage"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stockage updated", "data": stockage})
}

// DeleteStockage removes one storage record.
func DeleteStockage(c *gin.Context) {
	var stockage models.Stockage
	if err := config.DB.First(&stockage, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stockage not found"})
		return
	}
	if err := config.DB.Delete(&stockage).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete stockage"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stockage deleted"})
}
