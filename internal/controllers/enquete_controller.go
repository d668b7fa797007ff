package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"enquete_peche/internal/config"
	"enquete_peche/internal/models"
)

type membreInput struct {
	Nom             string `json:"nom"`
	Age             int    `json:"age"`
	Sexe            string `json:"sexe"`
	LienFamilial    string `json:"lienFamilial"`
	NiveauEducation string `json:"niveauEducation"`
	LieuResidence   string `json:"lieuResidence"`
	AnneesResidence int    `json:"anneesResidence"`
}

type activiteInput struct {
	TypeActivite  string  `json:"typeActivite"`
	Description   string  `json:"description"`
	RevenuMensuel float64 `json:"revenuMensuel"`
	Saisonnier    bool    `json:"saisonnier"`
}

func (m membreInput) toModel(enqueteID uint) models.MembreFamille {
	return models.MembreFamille{
		Nom:             m.Nom,
		Age:             m.Age,
		Sexe:            m.Sexe,
		LienFamilial:    m.LienFamilial,
		NiveauEducation: m.NiveauEducation,
		LieuResidence:   m.LieuResidence,
		AnneesResidence: m.AnneesResidence,
		EnqueteID:       enqueteID,
	}
}

func (a activiteInput) toModel(enqueteID uint) models.ActiviteEco {
	return models.ActiviteEco{
		TypeActivite:  a.TypeActivite,
		Description:   a.Description,
		RevenuMensuel: a.RevenuMensuel,
		Saisonnier:    a.Saisonnier,
		EnqueteID:     enqueteID,
	}
}

// resolveEnqueteRefs checks the survey's foreign keys before anything is
// written. Returns false after writing the error response.
func resolveEnqueteRefs(c *gin.Context, enqueteurID, secteurID *uint) bool {
	if enqueteurID != nil {
		var enqueteur models.Enqueteur
		if err := config.DB.First(&enqueteur, *enqueteurID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Enqueteur not found"})
			return false
		}
	}
	if secteurID != nil {
		var secteur models.Secteur
		if err := config.DB.First(&secteur, *secteurID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Secteur not found"})
			return false
		}
	}
	return true
}

func preloadEnquete(db *gorm.DB, id uint, dest *models.Enquete) error {
	return db.
		Preload("Membres").
		Preload("Activites").
		Preload("Enqueteur").
		Preload("Secteur").
		Preload("Pecheur.Pratiques").
		Preload("Pecheur.Equipements").
		Preload("Pecheur.Embarcations").
		Preload("Pecheur.Circuits.Destinations").
		Preload("Collecteur.Produits").
		Preload("Collecteur.Stockages").
		Preload("Collecteur.Distributions").
		Preload("Collecteur.Contrats").
		First(dest, id).Error
}

// CreateEnquete registers a survey together with its family members and
// economic activities in one transaction. When the respondent flags say so,
// an empty fisher and/or collector profile is created alongside.
func CreateEnquete(c *gin.Context) {
	var input struct {
		NomRepondant          string          `json:"nomRepondant" binding:"required"`
		Age                   int             `json:"age"`
		Sexe                  string          `json:"sexe"`
		SituationMatrimoniale string          `json:"situationMatrimoniale"`
		NiveauEducation       string          `json:"niveauEducation"`
		DateEnquete           *time.Time      `json:"dateEnquete"`
		EstPecheur            bool            `json:"estPecheur"`
		EstCollecteur         bool            `json:"estCollecteur"`
		TouteActivite         bool            `json:"touteActivite"`
		EnqueteurID           *uint           `json:"enqueteurId"`
		SecteurID             *uint           `json:"secteurId"`
		Membres               []membreInput   `json:"membresFamille"`
		Activites             []activiteInput `json:"activitesEco"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !resolveEnqueteRefs(c, input.EnqueteurID, input.SecteurID) {
		return
	}

	dateEnquete := time.Now()
	if input.DateEnquete != nil {
		dateEnquete = *input.DateEnquete
	}

	enquete := models.Enquete{
		NomRepondant:          input.NomRepondant,
		Age:                   input.Age,
		Sexe:                  input.Sexe,
		SituationMatrimoniale: input.SituationMatrimoniale,
		NiveauEducation:       input.NiveauEducation,
		DateEnquete:           dateEnquete,
		EstPecheur:            input.EstPecheur,
		EstCollecteur:         input.EstCollecteur,
		TouteActivite:         input.TouteActivite,
		EnqueteurID:           input.EnqueteurID,
		SecteurID:             input.SecteurID,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&enquete).Error; err != nil {
			return err
		}
		for _, m := range input.Membres {
			membre := m.toModel(enquete.ID)
			if err := tx.Create(&membre).Error; err != nil {
				return err
			}
		}
		for _, a := range input.Activites {
			activite := a.toModel(enquete.ID)
			if err := tx.Create(&activite).Error; err != nil {
				return err
			}
		}
		if input.EstPecheur {
			if err := tx.Create(&models.Pecheur{EnqueteID: enquete.ID}).Error; err != nil {
				return err
			}
		}
		if input.EstCollecteur {
			if err := tx.Create(&models.Collecteur{EnqueteID: enquete.ID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Error("CreateEnquete: transaction failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create enquete"})
		return
	}

	var full models.Enquete
	if err := preloadEnquete(config.DB, enquete.ID, &full); err != nil {
		logrus.WithError(err).Error("CreateEnquete: reload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create enquete"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Enquete created", "data": full})
}

// ListEnquetes lists surveys ordered by date, newest first, with optional
// respondent-name search and paging.
func ListEnquetes(c *gin.Context) {
	q := config.DB.Model(&models.Enquete{}).Preload("Enqueteur").Preload("Secteur")
	if search := c.Query("search"); search != "" {
		q = q.Where("LOWER(nom_repondant) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if sid := c.Query("secteurId"); sid != "" {
		q = q.Where("secteur_id = ?", sid)
	}
	q = q.Order("date_enquete DESC")
	respondList[models.Enquete](c, q, pageParam(c))
}

// GetEnquete retrieves one survey with every nested relation populated.
func GetEnquete(c *gin.Context) {
	var enquete models.Enquete
	if err := config.DB.First(&enquete, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Enquete not found"})
		return
	}
	var full models.Enquete
	if err := preloadEnquete(config.DB, enquete.ID, &full); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch enquete"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": full})
}

// UpdateEnquete modifies a survey. Scalar fields are patched; when the
// payload carries a family-member or activity list the stored collection is
// replaced wholesale, inside the same transaction as the parent update.
// dateEnquete keeps its stored value when the payload omits it.
func UpdateEnquete(c *gin.Context) {
	var enquete models.Enquete
	if err := config.DB.First(&enquete, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Enquete not found"})
		return
	}

	var input struct {
		NomRepondant          *string          `json:"nomRepondant"`
		Age                   *int             `json:"age"`
		Sexe                  *string          `json:"sexe"`
		SituationMatrimoniale *string          `json:"situationMatrimoniale"`
		NiveauEducation       *string          `json:"niveauEducation"`
		DateEnquete           *time.Time       `json:"dateEnquete"`
		EstPecheur            *bool            `json:"estPecheur"`
		EstCollecteur         *bool            `json:"estCollecteur"`
		TouteActivite         *bool            `json:"touteActivite"`
		EnqueteurID           *uint            `json:"enqueteurId"`
		SecteurID             *uint            `json:"secteurId"`
		Membres               *[]membreInput   `json:"membresFamille"`
		Activites             *[]activiteInput `json:"activitesEco"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !resolveEnqueteRefs(c, input.EnqueteurID, input.SecteurID) {
		return
	}

	if input.NomRepondant != nil {
		enquete.NomRepondant = *input.NomRepondant
	}
	if input.Age != nil {
		enquete.Age = *input.Age
	}
	if input.Sexe != nil {
		enquete.Sexe = *input.Sexe
	}
	if input.SituationMatrimoniale != nil {
		enquete.SituationMatrimoniale = *input.SituationMatrimoniale
	}
	if input.NiveauEducation != nil {
		enquete.NiveauEducation = *input.NiveauEducation
	}
	if input.DateEnquete != nil {
		enquete.DateEnquete = *input.DateEnquete
	}
	if input.EstPecheur != nil {
		enquete.EstPecheur = *input.EstPecheur
	}
	if input.EstCollecteur != nil {
		enquete.EstCollecteur = *input.EstCollecteur
	}
	if input.TouteActivite != nil {
		enquete.TouteActivite = *input.TouteActivite
	}
	if input.EnqueteurID != nil {
		enquete.EnqueteurID = input.EnqueteurID
	}
	if input.SecteurID != nil {
		enquete.SecteurID = input.SecteurID
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if input.Membres != nil {
			if err := tx.Where("enquete_id = ?", enquete.ID).Delete(&models.MembreFamille{}).Error; err != nil {
				return err
			}
			for _, m := range *input.Membres {
				membre := m.toModel(enquete.ID)
				if err := tx.Create(&membre).Error; err != nil {
					return err
				}
			}
		}
		if input.Activites != nil {
			if err := tx.Where("enquete_id = ?", enquete.ID).Delete(&models.ActiviteEco{}).Error; err != nil {
				return err
			}
			for _, a := range *input.Activites {
				activite := a.toModel(enquete.ID)
				if err := tx.Create(&activite).Error; err != nil {
					return err
				}
			}
		}
		// Late flag flips still get their profile.
		if enquete.EstPecheur {
			var count int64
			tx.Model(&models.Pecheur{}).Where("enquete_id = ?", enquete.ID).Count(&count)
			if count == 0 {
				if err := tx.Create(&models.Pecheur{EnqueteID: enquete.ID}).Error; err != nil {
					return err
				}
			}
		}
		if enquete.EstCollecteur {
			var count int64
			tx.Model(&models.Collecteur{}).Where("enquete_id = ?", enquete.ID).Count(&count)
			if count == 0 {
				if err := tx.Create(&models.Collecteur{EnqueteID: enquete.ID}).Error; err != nil {
					return err
				}
			}
		}
		return tx.Save(&enquete).Error
	})
	if err != nil {
		logrus.WithError(err).Error("UpdateEnquete: transaction failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update enquete"})
		return
	}

	var full models.Enquete
	if err := preloadEnquete(config.DB, enquete.ID, &full); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update enquete"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Enquete updated", "data": full})
}

// DeleteEnquete removes a survey and everything it owns, including the
// fisher and collector profile subtrees.
func DeleteEnquete(c *gin.Context) {
	var enquete models.Enquete
	if err := config.DB.First(&enquete, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Enquete not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("enquete_id = ?", enquete.ID).Delete(&models.MembreFamille{}).Error; err != nil {
			return err
		}
		if err := tx.Where("enquete_id = ?", enquete.ID).Delete(&models.ActiviteEco{}).Error; err != nil {
			return err
		}
		if err := deletePecheurTreeByEnquete(tx, enquete.ID); err != nil {
			return err
		}
		if err := deleteCollecteurTreeByEnquete(tx, enquete.ID); err != nil {
			return err
		}
		return tx.Delete(&enquete).Error
	})
	if err != nil {
		logrus.WithError(err).Error("DeleteEnquete: transaction failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete enquete"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Enquete deleted"})
}

func deletePecheurTreeByEnquete(tx *gorm.DB, enqueteID uint) error {
	var pecheur models.Pecheur
	if err := tx.Where("enquete_id = ?", enqueteID).First(&pecheur).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	var circuitIDs []uint
	if err := tx.Model(&models.CircuitCommercial{}).Where("pecheur_id = ?", pecheur.ID).Pluck("id", &circuitIDs).Error; err != nil {
		return err
	}
	if len(circuitIDs) > 0 {
		if err := tx.Where("circuit_id IN ?", circuitIDs).Delete(&models.DestinationCommerciale{}).Error; err != nil {
			return err
		}
	}
	for _, child := range []interface{}{
		&models.PratiquePeche{},
		&models.EquipementPeche{},
		&models.EmbarcationPeche{},
		&models.CircuitCommercial{},
	} {
		if err := tx.Where("pecheur_id = ?", pecheur.ID).Delete(child).Error; err != nil {
			return err
		}
	}
	return tx.Delete(&pecheur).Error
}

func deleteCollecteurTreeByEnquete(tx *gorm.DB, enqueteID uint) error {
	var collecteur models.Collecteur
	if err := tx.Where("enquete_id = ?", enqueteID).First(&collecteur).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	for _, child := range []interface{}{
		&models.ProduitAchete{},
		&models.Stockage{},
		&models.Distribution{},
		&models.ContratAcheteur{},
	} {
		if err := tx.Where("collecteur_id = ?", collecteur.ID).Delete(child).Error; err != nil {
			return err
		}
	}
	return tx.Delete(&collecteur).Error
}
