package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"enquete_peche/internal/config"
	"enquete_peche/internal/models"
)

type equipementStat struct {
	TypeEquipement string `json:"typeEquipement"`
	Total          int64  `json:"total"`
}

type acquisitionStat struct {
	ModeAcquisition string `json:"modeAcquisition"`
	Total           int64  `json:"total"`
}

type prixCovidStat struct {
	TypeProduit string  `json:"typeProduit"`
	Avant       float64 `json:"avant"`
	Pendant     float64 `json:"pendant"`
	Apres       float64 `json:"apres"`
}

// GetStats computes the read-only dashboard aggregates: respondent profile
// counts, top equipment types, boat acquisition modes and the COVID-era
// purchase-price comparison per product type.
func GetStats(c *gin.Context) {
	fail := func(err error) {
		logrus.WithError(err).Error("GetStats: aggregate failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
	}

	var totalEnquetes, totalPecheurs, totalCollecteurs int64
	if err := config.DB.Model(&models.Enquete{}).Count(&totalEnquetes).Error; err != nil {
		fail(err)
		return
	}
	if err := config.DB.Model(&models.Pecheur{}).Count(&totalPecheurs).Error; err != nil {
		fail(err)
		return
	}
	if err := config.DB.Model(&models.Collecteur{}).Count(&totalCollecteurs).Error; err != nil {
		fail(err)
		return
	}

	var topEquipements []equipementStat
	if err := config.DB.Model(&models.EquipementPeche{}).
		Select("type_equipement, COUNT(*) as total").
		Group("type_equipement").
		Order("total DESC").
		Limit(5).
		Scan(&topEquipements).Error; err != nil {
		fail(err)
		return
	}

	var modesAcquisition []acquisitionStat
	if err := config.DB.Model(&models.EmbarcationPeche{}).
		Select("mode_acquisition, COUNT(*) as total").
		Group("mode_acquisition").
		Order("total DESC").
		Scan(&modesAcquisition).Error; err != nil {
		fail(err)
		return
	}

	var prixCovid []prixCovidStat
	if err := config.DB.Model(&models.ProduitAchete{}).
		Select("type_produit, AVG(prix_achat_avant_covid) as avant, AVG(prix_achat_pendant_covid) as pendant, AVG(prix_achat_apres_covid) as apres").
		Group("type_produit").
		Order("type_produit ASC").
		Scan(&prixCovid).Error; err != nil {
		fail(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"totalEnquetes":    totalEnquetes,
		"totalPecheurs":    totalPecheurs,
		"totalCollecteurs": totalCollecteurs,
		"topEquipements":   topEquipements,
		"modesAcquisition": modesAcquisition,
		"prixCovid":        prixCovid,
	}})
}
