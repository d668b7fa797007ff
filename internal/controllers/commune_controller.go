package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"enquete_peche/internal/config"
	"enquete_peche/internal/models"
)

// CreateCommune registers a commune under a district. The name must be
// unique within that district.
func CreateCommune(c *gin.Context) {
	var input struct {
		Nom        string `json:"nom" binding:"required"`
		DistrictID uint   `json:"districtId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var district models.District
	if err := config.DB.First(&district, input.DistrictID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "District not found"})
		return
	}

	var count int64
	config.DB.Model(&models.Commune{}).Where("nom = ? AND district_id = ?", input.Nom, input.DistrictID).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Commune with this name already exists in this district"})
		return
	}

	commune := models.Commune{Nom: input.Nom, DistrictID: input.DistrictID}
	if err := config.DB.Create(&commune).Error; err != nil {
		logrus.WithError(err).Error("CreateCommune: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create commune"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Commune created", "data": commune})
}

// ListCommunes lists communes, optionally filtered by district.
func ListCommunes(c *gin.Context) {
	q := config.DB.Model(&models.Commune{})
	if did := c.Query("districtId"); did != "" {
		q = q.Where("district_id = ?", did)
	}
	q = withNomSearch(q, c.Query("search")).Order("nom ASC")
	respondList[models.Commune](c, q, pageParam(c))
}

// GetCommune retrieves one commune with its district and fokontany.
func GetCommune(c *gin.Context) {
	var commune models.Commune
	if err := config.DB.Preload("District").Preload("Fokontany").First(&commune, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commune not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": commune})
}

// UpdateCommune renames or re-parents a commune.
func UpdateCommune(c *gin.Context) {
	var commune models.Commune
	if err := config.DB.First(&commune, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commune not found"})
		return
	}

	var input struct {
		Nom        *string `json:"nom"`
		DistrictID *uint   `json:"districtId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nom := commune.Nom
	districtID := commune.DistrictID
	if input.Nom != nil {
		nom = *input.Nom
	}
	if input.DistrictID != nil {
		var district models.District
		if err := config.DB.First(&district, *input.DistrictID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "District not found"})
			return
		}
		districtID = *input.DistrictID
	}

	var count int64
	config.DB.Model(&models.Commune{}).Where("nom = ? AND district_id = ? AND id <> ?", nom, districtID, commune.ID).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Commune with this name already exists in this district"})
		return
	}

	commune.Nom = nom
	commune.DistrictID = districtID
	if err := config.DB.Save(&commune).Error; err != nil {
		logrus.WithError(err).Error("UpdateCommune: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update commune"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Commune updated", "data": commune})
}

// DeleteCommune removes a commune and its fokontany and secteurs.
func DeleteCommune(c *gin.Context) {
	var commune models.Commune
	if err := config.DB.First(&commune, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commune not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		return deleteCommuneTree(tx, []uint{commune.ID})
	})
	if err != nil {
		logrus.WithError(err).Error("DeleteCommune: delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete commune"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Commune deleted"})
}
