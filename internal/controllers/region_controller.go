package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"enquete_peche/internal/config"
	"enquete_peche/internal/models"
)

// CreateRegion registers a new region, rejecting duplicate names.
func CreateRegion(c *gin.Context) {
	var input struct {
		Nom string `json:"nom" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var count int64
	config.DB.Model(&models.Region{}).Where("nom = ?", input.Nom).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Region with this name already exists"})
		return
	}

	region := models.Region{Nom: input.Nom}
	if err := config.DB.Create(&region).Error; err != nil {
		logrus.WithError(err).Error("CreateRegion: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create region"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Region created", "data": region})
}

// ListRegions lists regions ordered by name, with optional search and paging.
func ListRegions(c *gin.Context) {
	q := withNomSearch(config.DB.Model(&models.Region{}), c.Query("search")).Order("nom ASC")
	respondList[models.Region](c, q, pageParam(c))
}

// GetRegion retrieves one region with its districts.
func GetRegion(c *gin.Context) {
	var region models.Region
	if err := config.DB.Preload("Districts").First(&region, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Region not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": region})
}

// UpdateRegion renames a region, keeping names unique.
func UpdateRegion(c *gin.Context) {
	var region models.Region
	if err := config.DB.First(&region, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Region not found"})
		return
	}

	var input struct {
		Nom *string `json:"nom"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Nom != nil {
		var count int64
		config.DB.Model(&models.Region{}).Where("nom = ? AND id <> ?", *input.Nom, region.ID).Count(&count)
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Region with this name already exists"})
			return
		}
		region.Nom = *input.Nom
	}

	if err := config.DB.Save(&region).Error; err != nil {
		logrus.WithError(err).Error("UpdateRegion: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update region"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Region updated", "data": region})
}

// DeleteRegion removes a region and its whole administrative subtree.
func DeleteRegion(c *gin.Context) {
	var region models.Region
	if err := config.DB.First(&region, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Region not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var districtIDs []uint
		if err := tx.Model(&models.District{}).Where("region_id = ?", region.ID).Pluck("id", &districtIDs).Error; err != nil {
			return err
		}
		if err := deleteDistrictTree(tx, districtIDs); err != nil {
			return err
		}
		return tx.Delete(&region).Error
	})
	if err != nil {
		logrus.WithError(err).Error("DeleteRegion: delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete region"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Region deleted"})
}
