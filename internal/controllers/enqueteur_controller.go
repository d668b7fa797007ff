package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"enquete_peche/internal/config"
	"enquete_peche/internal/models"
)

// CreateEnqueteur registers a surveyor. Nom, code and email are unique; the
// pre-write lookups give a clean 400 and the 23505 check catches races.
func CreateEnqueteur(c *gin.Context) {
	var input struct {
		Nom       string `json:"nom" binding:"required"`
		Code      string `json:"code" binding:"required"`
		Email     string `json:"email"`
		Telephone string `json:"telephone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var count int64
	config.DB.Model(&models.Enqueteur{}).Where("nom = ? OR code = ?", input.Nom, input.Code).Count(&count)
	if count == 0 && input.Email != "" {
		config.DB.Model(&models.Enqueteur{}).Where("email = ?", input.Email).Count(&count)
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Enqueteur with this nom, code or email already exists"})
		return
	}

	enqueteur := models.Enqueteur{Nom: input.Nom, Code: input.Code, Email: input.Email, Telephone: input.Telephone}
	if err := config.DB.Create(&enqueteur).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Enqueteur with this nom, code or email already exists"})
			return
		}
		logrus.WithError(err).Error("CreateEnqueteur: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create enqueteur"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Enqueteur created", "data": enqueteur})
}

// ListEnqueteurs lists surveyors ordered by name.
func ListEnqueteurs(c *gin.Context) {
	q := withNomSearch(config.DB.Model(&models.Enqueteur{}), c.Query("search")).Order("nom ASC")
	respondList[models.Enqueteur](c, q, pageParam(c))
}

// GetEnqueteur retrieves one surveyor with the surveys they conducted.
func GetEnqueteur(c *gin.Context) {
	var enqueteur models.Enqueteur
	if err := config.DB.Preload("Enquetes").First(&enqueteur, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Enqueteur not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": enqueteur})
}

// UpdateEnqueteur modifies a surveyor, re-checking uniqueness on changed
// identifying fields.
func UpdateEnqueteur(c *gin.Context) {
	var enqueteur models.Enqueteur
	if err := config.DB.First(&enqueteur, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Enqueteur not found"})
		return
	}

	var input struct {
		Nom       *string `json:"nom"`
		Code      *string `json:"code"`
		Email     *string `json:"email"`
		Telephone *string `json:"telephone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Nom != nil {
		enqueteur.Nom = *input.Nom
	}
	if input.Code != nil {
		enqueteur.Code = *input.Code
	}
	if input.Email != nil {
		enqueteur.Email = *input.Email
	}
	if input.Telephone != nil {
		enqueteur.Telephone = *input.Telephone
	}

	var count int64
	config.DB.Model(&models.Enqueteur{}).
		Where("(nom = ? OR code = ? OR (email <> '' AND email = ?)) AND id <> ?", enqueteur.Nom, enqueteur.Code, enqueteur.Email, enqueteur.ID).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Enqueteur with this nom, code or email already exists"})
		return
	}

	if err := config.DB.Save(&enqueteur).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Enqueteur with this nom, code or email already exists"})
			return
		}
		logrus.WithError(err).Error("UpdateEnqueteur: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update enqueteur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Enqueteur updated", "data": enqueteur})
}

// DeleteEnqueteur removes a surveyor for good; their surveys keep their rows
// with the link cleared. The row is hard-deleted so the unique nom/code
// columns never trap a re-registration behind a tombstone.
func DeleteEnqueteur(c *gin.Context) {
	var enqueteur models.Enqueteur
	if err := config.DB.First(&enqueteur, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Enqueteur not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Enquete{}).Where("enqueteur_id = ?", enqueteur.ID).Update("enqueteur_id", nil).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&enqueteur).Error
	})
	if err != nil {
		logrus.WithError(err).Error("DeleteEnqueteur: delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete enqueteur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Enqueteur deleted"})
}
