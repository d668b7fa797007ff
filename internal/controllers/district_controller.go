package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"enquete_peche/internal/config"
	"enquete_peche/internal/models"
)

// CreateDistrict registers a district under a region. The name must be
// unique within that region.
func CreateDistrict(c *gin.Context) {
	var input struct {
		Nom      string `json:"nom" binding:"required"`
		RegionID uint   `json:"regionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var region models.Region
	if err := config.DB.First(&region, input.RegionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Region not found"})
		return
	}

	var count int64
	config.DB.Model(&models.District{}).Where("nom = ? AND region_id = ?", input.Nom, input.RegionID).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "District with this name already exists in this region"})
		return
	}

	district := models.District{Nom: input.Nom, RegionID: input.RegionID}
	if err := config.DB.Create(&district).Error; err != nil {
		logrus.WithError(err).Error("CreateDistrict: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create district"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "District created", "data": district})
}

// ListDistricts lists districts, optionally filtered by region.
func ListDistricts(c *gin.Context) {
	q := config.DB.Model(&models.District{})
	if rid := c.Query("regionId"); rid != "" {
		q = q.Where("region_id = ?", rid)
	}
	q = withNomSearch(q, c.Query("search")).Order("nom ASC")
	respondList[models.District](c, q, pageParam(c))
}

// GetDistrict retrieves one district with its region and communes.
func GetDistrict(c *gin.Context) {
	var district models.District
	if err := config.DB.Preload("Region").Preload("Communes").First(&district, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "District not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": district})
}

// UpdateDistrict renames or re-parents a district, re-checking uniqueness in
// the target region.
func UpdateDistrict(c *gin.Context) {
	var district models.District
	if err := config.DB.First(&district, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "District not found"})
		return
	}

	var input struct {
		Nom      *string `json:"nom"`
		RegionID *uint   `json:"regionId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nom := district.Nom
	regionID := district.RegionID
	if input.Nom != nil {
		nom = *input.Nom
	}
	if input.RegionID != nil {
		var region models.Region
		if err := config.DB.First(&region, *input.RegionID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Region not found"})
			return
		}
		regionID = *input.RegionID
	}

	var count int64
	config.DB.Model(&models.District{}).Where("nom = ? AND region_id = ? AND id <> ?", nom, regionID, district.ID).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "District with this name already exists in this region"})
		return
	}

	district.Nom = nom
	district.RegionID = regionID
	if err := config.DB.Save(&district).Error; err != nil {
		logrus.WithError(err).Error("UpdateDistrict: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update district"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "District updated", "data": district})
}

// DeleteDistrict removes a district and its communes, fokontany and secteurs.
func DeleteDistrict(c *gin.Context) {
	var district models.District
	if err := config.DB.First(&district, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "District not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		return deleteDistrictTree(tx, []uint{district.ID})
	})
	if err != nil {
		logrus.WithError(err).Error("DeleteDistrict: delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete district"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "District deleted"})
}
