package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"enquete_peche/internal/config"
	"enquete_peche/internal/models"
)

type destinationInput struct {
	Nom         string  `json:"nom"`
	Pourcentage float64 `json:"pourcentage"`
}

// validDestinations rejects percentages outside [0,100]. The sum is not
// required to reach 100.
func validDestinations(destinations []destinationInput) bool {
	for _, d := range destinations {
		if d.Pourcentage < 0 || d.Pourcentage > 100 {
			return false
		}
	}
	return true
}

// CreateCircuit registers a commercial circuit with its destination splits
// in one transaction.
func CreateCircuit(c *gin.Context) {
	var input struct {
		TypeProduit  string             `json:"typeProduit" binding:"required"`
		ModeVente    string             `json:"modeVente"`
		PrixMoyen    float64            `json:"prixMoyen"`
		Destinations []destinationInput `json:"destinations"`
		PecheurID    *uint              `json:"pecheurId"`
		EnqueteID    *uint              `json:"enqueteId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pecheur := resolvePecheur(c, input.PecheurID, input.EnqueteID)
	if pecheur == nil {
		return
	}

	if !validDestinations(input.Destinations) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Destination pourcentage must be between 0 and 100"})
		return
	}

	circuit := models.CircuitCommercial{
		TypeProduit: input.TypeProduit,
		ModeVente:   input.ModeVente,
		PrixMoyen:   input.PrixMoyen,
		PecheurID:   pecheur.ID,
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&circuit).Error; err != nil {
			return err
		}
		for _, d := range input.Destinations {
			dest := models.DestinationCommerciale{Nom: d.Nom, Pourcentage: d.Pourcentage, CircuitID: circuit.ID}
			if err := tx.Create(&dest).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Error("CreateCircuit: transaction failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create circuit"})
		return
	}

	config.DB.Preload("Destinations").First(&circuit, circuit.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Circuit created", "data": circuit})
}

// ListCircuits lists circuits with destinations, optionally filtered by
// fisher.
func ListCircuits(c *gin.Context) {
	q := config.DB.Model(&models.CircuitCommercial{}).Preload("Destinations")
	if pid := c.Query("pecheurId"); pid != "" {
		q = q.Where("pecheur_id = ?", pid)
	}
	respondList[models.CircuitCommercial](c, q, pageParam(c))
}

// GetCircuit retrieves one circuit with its destinations.
func GetCircuit(c *gin.Context) {
	var circuit models.CircuitCommercial
	if err := config.DB.Preload("Destinations").First(&circuit, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Circuit not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": circuit})
}

// UpdateCircuit patches a circuit. A supplied destinations array replaces
// the stored set wholesale, inside the same transaction as the parent save.
func UpdateCircuit(c *gin.Context) {
	var circuit models.CircuitCommercial
	if err := config.DB.First(&circuit, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Circuit not found"})
		return
	}

	var input struct {
		TypeProduit  *string             `json:"typeProduit"`
		ModeVente    *string             `json:"modeVente"`
		PrixMoyen    *float64            `json:"prixMoyen"`
		Destinations *[]destinationInput `json:"destinations"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Destinations != nil && !validDestinations(*input.Destinations) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Destination pourcentage must be between 0 and 100"})
		return
	}

	if input.TypeProduit != nil {
		circuit.TypeProduit = *input.TypeProduit
	}
	if input.ModeVente != nil {
		circuit.ModeVente = *input.ModeVente
	}
	if input.PrixMoyen != nil {
		circuit.PrixMoyen = *input.PrixMoyen
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if input.Destinations != nil {
			if err := tx.Where("circuit_id = ?", circuit.ID).Delete(&models.DestinationCommerciale{}).Error; err != nil {
				return err
			}
			for _, d := range *input.Destinations {
				dest := models.DestinationCommerciale{Nom: d.Nom, Pourcentage: d.Pourcentage, CircuitID: circuit.ID}
				if err := tx.Create(&dest).Error; err != nil {
					return err
				}
			}
		}
		return tx.Save(&circuit).Error
	})
	if err != nil {
		logrus.WithError(err).Error("UpdateCircuit: transaction failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update circuit"})
		return
	}

	circuit.Destinations = nil
	config.DB.Preload("Destinations").First(&circuit, circuit.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Circuit updated", "data": circuit})
}

// DeleteCircuit removes a circuit and its destinations.
func DeleteCircuit(c *gin.Context) {
	var circuit models.CircuitCommercial
	if err := config.DB.First(&circuit, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Circuit not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("circuit_id = ?", circuit.ID).Delete(&models.DestinationCommerciale{}).Error; err != nil {
			return err
		}
		return tx.Delete(&circuit).Error
	})
	if err != nil {
		logrus.WithError(err).Error("DeleteCircuit: transaction failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete circuit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Circuit deleted"})
}
