package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"enquete_peche/internal/config"
	"enquete_peche/internal/models"
)

// CreateProduit registers a purchased product. A collector may only have one
// row per product type.
func CreateProduit(c *gin.Context) {
	var input struct {
		TypeProduit           string   `json:"typeProduit" binding:"required"`
		QuantiteAnnuelle      float64  `json:"quantiteAnnuelle"`
		PrixAchatAvantCovid   float64  `json:"prixAchatAvantCovid"`
		PrixAchatPendantCovid float64  `json:"prixAchatPendantCovid"`
		PrixAchatApresCovid   float64  `json:"prixAchatApresCovid"`
		EspecesCollectees     []string `json:"especesCollectees"`
		CollecteurID          *uint    `json:"collecteurId"`
		EnqueteID             *uint    `json:"enqueteId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collecteur := resolveCollecteur(c, input.CollecteurID, input.EnqueteID)
	if collecteur == nil {
		return
	}

	var count int64
	config.DB.Model(&models.ProduitAchete{}).Where("collecteur_id = ? AND type_produit = ?", collecteur.ID, input.TypeProduit).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Produit of this type already exists for this collecteur"})
		return
	}

	produit := models.ProduitAchete{
		TypeProduit:           input.TypeProduit,
		QuantiteAnnuelle:      input.QuantiteAnnuelle,
		PrixAchatAvantCovid:   input.PrixAchatAvantCovid,
		PrixAchatPendantCovid: input.PrixAchatPendantCovid,
		PrixAchatApresCovid:   input.PrixAchatApresCovid,
		EspecesCollectees:     datatypes.NewJSONSlice(input.EspecesCollectees),
		CollecteurID:          collecteur.ID,
	}
	if err := config.DB.Create(&produit).Error; err != nil {
		logrus.WithError(err).Error("CreateProduit: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create produit"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Produit created", "data": produit})
}

// ListProduits lists purchased products, optionally filtered by collector.
func ListProduits(c *gin.Context) {
	q := config.DB.Model(&models.ProduitAchete{})
	if cid := c.Query("collecteurId"); cid != "" {
		q = q.Where("collecteur_id = ?", cid)
	}
	respondList[models.ProduitAchete](c, q, pageParam(c))
}

// GetProduit retrieves one purchased product.
func GetProduit(c *gin.Context) {
	var produit models.ProduitAchete
	if err := config.DB.First(&produit, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": produit})
}

// UpdateProduit patches a purchased product. Changing the product type
// re-checks the one-row-per-type rule against the collector's other rows.
func UpdateProduit(c *gin.Context) {
	var produit models.ProduitAchete
	if err := config.DB.First(&produit, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit not found"})
		return
	}

	var input struct {
		TypeProduit           *string   `json:"typeProduit"`
		QuantiteAnnuelle      *float64  `json:"quantiteAnnuelle"`
		PrixAchatAvantCovid   *float64  `json:"prixAchatAvantCovid"`
		PrixAchatPendantCovid *float64  `json:"prixAchatPendantCovid"`
		PrixAchatApresCovid   *float64  `json:"prixAchatApresCovid"`
		EspecesCollectees     *[]string `json:"especesCollectees"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.TypeProduit != nil && *input.TypeProduit != produit.TypeProduit {
		var count int64
		config.DB.Model(&models.ProduitAchete{}).
			Where("collecteur_id = ? AND type_produit = ? AND id <> ?", produit.CollecteurID, *input.TypeProduit, produit.ID).
			Count(&count)
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Produit of this type already exists for this collecteur"})
			return
		}
		produit.TypeProduit = *input.TypeProduit
	}
	if input.QuantiteAnnuelle != nil {
		produit.QuantiteAnnuelle = *input.QuantiteAnnuelle
	}
	if input.PrixAchatAvantCovid != nil {
		produit.PrixAchatAvantCovid = *input.PrixAchatAvantCovid
	}
	if input.PrixAchatPendantCovid != nil {
		produit.PrixAchatPendantCovid = *input.PrixAchatPendantCovid
	}
	if input.PrixAchatApresCovid != nil {
		produit.PrixAchatApresCovid = *input.PrixAchatApresCovid
	}
	if input.EspecesCollectees != nil {
		produit.EspecesCollectees = datatypes.NewJSONSlice(*input.EspecesCollectees)
	}

	if err := config.DB.Save(&produit).Error; err != nil {
		logrus.WithError(err).Error("UpdateProduit: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update produit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produit updated", "data": produit})
}

// DeleteProduit removes one purchased product.
func DeleteProduit(c *gin.Context) {
	var produit models.ProduitAchete
	if err := config.DB.First(&produit, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit not found"})
		return
	}
	if err := config.DB.Delete(&produit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete produit"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Produit deleted"})
}
