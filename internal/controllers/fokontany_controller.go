package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"enquete_peche/internal/config"
	"enquete_peche/internal/models"
)

// CreateFokontany registers a fokontany under a commune. The name must be
// unique within that commune.
func CreateFokontany(c *gin.Context) {
	var input struct {
		Nom       string `json:"nom" binding:"required"`
		CommuneID uint   `json:"communeId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var commune models.Commune
	if err := config.DB.First(&commune, input.CommuneID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commune not found"})
		return
	}

	var count int64
	config.DB.Model(&models.Fokontany{}).Where("nom = ? AND commune_id = ?", input.Nom, input.CommuneID).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fokontany with this name already exists in this commune"})
		return
	}

	fokontany := models.Fokontany{Nom: input.Nom, CommuneID: input.CommuneID}
	if err := config.DB.Create(&fokontany).Error; err != nil {
		logrus.WithError(err).Error("CreateFokontany: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create fokontany"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Fokontany created", "data": fokontany})
}

// ListFokontany lists fokontany, optionally filtered by commune.
func ListFokontany(c *gin.Context) {
	q := config.DB.Model(&models.Fokontany{})
	if cid := c.Query("communeId"); cid != "" {
		q = q.Where("commune_id = ?", cid)
	}
	q = withNomSearch(q, c.Query("search")).Order("nom ASC")
	respondList[models.Fokontany](c, q, pageParam(c))
}

// GetFokontany retrieves one fokontany with its commune and secteurs.
func GetFokontany(c *gin.Context) {
	var fokontany models.Fokontany
	if err := config.DB.Preload("Commune").Preload("Secteurs").First(&fokontany, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Fokontany not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": fokontany})
}

// UpdateFokontany renames or re-parents a fokontany.
func UpdateFokontany(c *gin.Context) {
	var fokontany models.Fokontany
	if err := config.DB.First(&fokontany, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Fokontany not found"})
		return
	}

	var input struct {
		Nom       *string `json:"nom"`
		CommuneID *uint   `json:"communeId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nom := fokontany.Nom
	communeID := fokontany.CommuneID
	if input.Nom != nil {
		nom = *input.Nom
	}
	if input.CommuneID != nil {
		var commune models.Commune
		if err := config.DB.First(&commune, *input.CommuneID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Commune not found"})
			return
		}
		communeID = *input.CommuneID
	}

	var count int64
	config.DB.Model(&models.Fokontany{}).Where("nom = ? AND commune_id = ? AND id <> ?", nom, communeID, fokontany.ID).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fokontany with this name already exists in this commune"})
		return
	}

	fokontany.Nom = nom
	fokontany.CommuneID = communeID
	if err := config.DB.Save(&fokontany).Error; err != nil {
		logrus.WithError(err).Error("UpdateFokontany: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update fokontany"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fokontany updated", "data": fokontany})
}

// DeleteFokontany removes a fokontany and its secteurs.
func DeleteFokontany(c *gin.Context) {
	var fokontany models.Fokontany
	if err := config.DB.First(&fokontany, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Fokontany not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		return deleteFokontanyTree(tx, []uint{fokontany.ID})
	})
	if err != nil {
		logrus.WithError(err).Error("DeleteFokontany: delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete fokontany"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fokontany deleted"})
}
