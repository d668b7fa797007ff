package controllers

import (
	"encoding/binary"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"enquete_peche/internal/config"
	"enquete_peche/internal/models"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"
)

// SecteurResponse mirrors models.Secteur but carries the boundary as a
// GeoJSON string instead of WKB bytes.
type SecteurResponse struct {
	ID          uint             `json:"ID"`
	CreatedAt   time.Time        `json:"CreatedAt"`
	UpdatedAt   time.Time        `json:"UpdatedAt"`
	Nom         string           `json:"nom"`
	FokontanyID uint             `json:"fokontanyId"`
	Fokontany   models.Fokontany `json:"fokontany,omitempty"`
	Geometrie   string           `json:"geometrie,omitempty"`
}

func toSecteurResponse(s models.Secteur) SecteurResponse {
	jsonGeom, err := convertWKBToGeoJSON(s.Geometrie)
	if err != nil {
		// A corrupt stored boundary is rendered without one, but not silently.
		logrus.WithError(err).WithField("secteur", s.ID).Error("toSecteurResponse: WKB decode failed")
	}
	return SecteurResponse{
		ID:          s.ID,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		Nom:         s.Nom,
		FokontanyID: s.FokontanyID,
		Fokontany:   s.Fokontany,
		Geometrie:   jsonGeom,
	}
}

// parseAndConvertGeometry parses a GeoJSON string into a geom.T and returns WKB bytes
func parseAndConvertGeometry(raw string) ([]byte, error) {
	if raw == "" {
		return nil, nil
	}
	var g geom.T
	if err := gjson.Unmarshal([]byte(raw), &g); err != nil {
		return nil, err
	}
	return wkb.Marshal(g, binary.LittleEndian)
}

// convertWKBToGeoJSON converts WKB bytes into a GeoJSON string
func convertWKBToGeoJSON(wkbBytes []byte) (string, error) {
	if len(wkbBytes) == 0 {
		return "", nil
	}
	g, err := wkb.Unmarshal(wkbBytes)
	if err != nil {
		return "", err
	}
	b, err := gjson.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CreateSecteur registers a secteur under a fokontany, with an optional
// GeoJSON boundary. The name must be unique within that fokontany.
func CreateSecteur(c *gin.Context) {
	var input struct {
		Nom         string `json:"nom" binding:"required"`
		FokontanyID uint   `json:"fokontanyId" binding:"required"`
		Geometrie   string `json:"geometrie"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var fokontany models.Fokontany
	if err := config.DB.First(&fokontany, input.FokontanyID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Fokontany not found"})
		return
	}

	var count int64
	config.DB.Model(&models.Secteur{}).Where("nom = ? AND fokontany_id = ?", input.Nom, input.FokontanyID).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Secteur with this name already exists in this fokontany"})
		return
	}

	wkbGeom, err := parseAndConvertGeometry(input.Geometrie)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid geometrie: " + err.Error()})
		return
	}

	secteur := models.Secteur{Nom: input.Nom, FokontanyID: input.FokontanyID, Geometrie: wkbGeom}
	if err := config.DB.Create(&secteur).Error; err != nil {
		logrus.WithError(err).Error("CreateSecteur: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create secteur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Secteur created", "data": toSecteurResponse(secteur)})
}

// ListSecteurs lists secteurs, optionally filtered by fokontany.
func ListSecteurs(c *gin.Context) {
	q := config.DB.Model(&models.Secteur{})
	if fid := c.Query("fokontanyId"); fid != "" {
		q = q.Where("fokontany_id = ?", fid)
	}
	q = withNomSearch(q, c.Query("search")).Order("nom ASC")

	page := pageParam(c)
	var secteurs []models.Secteur
	if page > 0 {
		var total int64
		if err := q.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count secteurs"})
			return
		}
		if err := q.Offset((page - 1) * pageSize).Limit(pageSize).Find(&secteurs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch secteurs"})
			return
		}
		totalPages := int((total + pageSize - 1) / pageSize)
		c.JSON(http.StatusOK, gin.H{"data": toSecteurResponses(secteurs), "total": total, "page": page, "totalPages": totalPages})
		return
	}
	if err := q.Find(&secteurs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch secteurs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": toSecteurResponses(secteurs)})
}

func toSecteurResponses(secteurs []models.Secteur) []SecteurResponse {
	out := make([]SecteurResponse, 0, len(secteurs))
	for _, s := range secteurs {
		out = append(out, toSecteurResponse(s))
	}
	return out
}

// GetSecteur retrieves one secteur with its fokontany.
func GetSecteur(c *gin.Context) {
	var secteur models.Secteur
	if err := config.DB.Preload("Fokontany").First(&secteur, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Secteur not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": toSecteurResponse(secteur)})
}

// UpdateSecteur renames, re-parents or redraws a secteur.
func UpdateSecteur(c *gin.Context) {
	var secteur models.Secteur
	if err := config.DB.First(&secteur, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Secteur not found"})
		return
	}

	var input struct {
		Nom         *string `json:"nom"`
		FokontanyID *uint   `json:"fokontanyId"`
		Geometrie   *string `json:"geometrie"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nom := secteur.Nom
	fokontanyID := secteur.FokontanyID
	if input.Nom != nil {
		nom = *input.Nom
	}
	if input.FokontanyID != nil {
		var fokontany models.Fokontany
		if err := config.DB.First(&fokontany, *input.FokontanyID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fokontany not found"})
			return
		}
		fokontanyID = *input.FokontanyID
	}

	var count int64
	config.DB.Model(&models.Secteur{}).Where("nom = ? AND fokontany_id = ? AND id <> ?", nom, fokontanyID, secteur.ID).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Secteur with this name already exists in this fokontany"})
		return
	}

	secteur.Nom = nom
	secteur.FokontanyID = fokontanyID
	if input.Geometrie != nil {
		if *input.Geometrie == "" {
			secteur.Geometrie = nil
		} else {
			wkbGeom, err := parseAndConvertGeometry(*input.Geometrie)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid geometrie: " + err.Error()})
				return
			}
			secteur.Geometrie = wkbGeom
		}
	}

	if err := config.DB.Save(&secteur).Error; err != nil {
		logrus.WithError(err).Error("UpdateSecteur: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update secteur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Secteur updated", "data": toSecteurResponse(secteur)})
}

// DeleteSecteur removes a secteur; surveys keep their rows with the link
// cleared.
func DeleteSecteur(c *gin.Context) {
	var secteur models.Secteur
	if err := config.DB.First(&secteur, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Secteur not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		return deleteSecteurs(tx, []uint{secteur.ID})
	})
	if err != nil {
		logrus.WithError(err).Error("DeleteSecteur: delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete secteur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Secteur deleted"})
}
