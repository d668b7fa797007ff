package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"enquete_peche/internal/config"
	"enquete_peche/internal/models"
)

// CreateActiviteEco registers an economic activity on a survey.
func CreateActiviteEco(c *gin.Context) {
	var input struct {
		TypeActivite  string  `json:"typeActivite" binding:"required"`
		Description   string  `json:"description"`
		RevenuMensuel float64 `json:"revenuMensuel"`
		Saisonnier    bool    `json:"saisonnier"`
		EnqueteID     uint    `json:"enqueteId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var enquete models.Enquete
	if err := config.DB.First(&enquete, input.EnqueteID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Enquete not found"})
		return
	}

	activite := models.ActiviteEco{
		TypeActivite:  input.TypeActivite,
		Description:   input.Description,
		RevenuMensuel: input.RevenuMensuel,
		Saisonnier:    input.Saisonnier,
		EnqueteID:     enquete.ID,
	}
	if err := config.DB.Create(&activite).Error; err != nil {
		logrus.WithError(err).Error("CreateActiviteEco: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activite"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Activite created", "data": activite})
}

// ListActivitesEco lists economic activities, optionally filtered by survey.
func ListActivitesEco(c *gin.Context) {
	q := config.DB.Model(&models.ActiviteEco{})
	if eid := c.Query("enqueteId"); eid != "" {
		q = q.Where("enquete_id = ?", eid)
	}
	respondList[models.ActiviteEco](c, q, pageParam(c))
}

// GetActiviteEco retrieves one economic activity.
func GetActiviteEco(c *gin.Context) {
	var activite models.ActiviteEco
	if err := config.DB.First(&activite, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activite not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": activite})
}

// UpdateActiviteEco patches an economic activity.
func UpdateActiviteEco(c *gin.Context) {
	var activite models.ActiviteEco
	if err := config.DB.First(&activite, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activite not found"})
		return
	}

	var input struct {
		TypeActivite  *string  `json:"typeActivite"`
		Description   *string  `json:"description"`
		RevenuMensuel *float64 `json:"revenuMensuel"`
		Saisonnier    *bool    `json:"saisonnier"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.TypeActivite != nil {
		activite.TypeActivite = *input.TypeActivite
	}
	if input.Description != nil {
		activite.Description = *input.Description
	}
	if input.RevenuMensuel != nil {
		activite.RevenuMensuel = *input.RevenuMensuel
	}
	if input.Saisonnier != nil {
		activite.Saisonnier = *input.Saisonnier
	}

	if err := config.DB.Save(&activite).Error; err != nil {
		logrus.WithError(err).Error("UpdateActiviteEco: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update activite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activite updated", "data": activite})
}

// DeleteActiviteEco removes one economic activity.
func DeleteActiviteEco(c *gin.Context) {
	var activite models.ActiviteEco
	if err := config.DB.First(&activite, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activite not found"})
		return
	}
	if err := config.DB.Delete(&activite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete activite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Activite deleted"})
}
