package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enquete_peche/internal/config"
	"enquete_peche/internal/models"
)

func TestDistrictNameUniqueWithinRegion(t *testing.T) {
	r := setupTest(t)

	_, parsed := doJSON(t, r, "POST", "/api/region", gin.H{"nom": "Diana"})
	region1 := idOf(t, parsed)
	_, parsed = doJSON(t, r, "POST", "/api/region", gin.H{"nom": "Boeny"})
	region2 := idOf(t, parsed)

	w, _ := doJSON(t, r, "POST", "/api/district", gin.H{"nom": "Ambanja", "regionId": region1})
	require.Equal(t, http.StatusCreated, w.Code)

	// Same name in the same region is rejected.
	w, parsed = doJSON(t, r, "POST", "/api/district", gin.H{"nom": "Ambanja", "regionId": region1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "District with this name already exists in this region", parsed["error"])

	// Same name under a different region is fine.
	w, _ = doJSON(t, r, "POST", "/api/district", gin.H{"nom": "Ambanja", "regionId": region2})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestDistrictCreateUnknownRegion(t *testing.T) {
	r := setupTest(t)

	w, parsed := doJSON(t, r, "POST", "/api/district", gin.H{"nom": "Ambanja", "regionId": 9999})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Region not found", parsed["error"])
}

func TestSecteurDuplicateInFokontany(t *testing.T) {
	r := setupTest(t)
	secteurID := seedGeography(t, r)

	// Fetch the fokontany id back through the created secteur.
	w, parsed := doJSON(t, r, "GET", fmt.Sprintf("/api/secteur/%d", secteurID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	fokontanyID := uint(dataField(t, parsed)["fokontanyId"].(float64))

	w, parsed = doJSON(t, r, "POST", "/api/secteur", gin.H{"nom": "Secteur A", "fokontanyId": fokontanyID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Secteur with this name already exists in this fokontany", parsed["error"])
}

func TestSecteurCorruptBoundaryOmitted(t *testing.T) {
	r := setupTest(t)
	secteurID := seedGeography(t, r)

	// Plant bytes no WKB reader accepts; the secteur must still be served,
	// just without a boundary.
	require.NoError(t, config.DB.Model(&models.Secteur{}).Where("id = ?", secteurID).
		Update("geometrie", []byte{0xde, 0xad}).Error)

	w, parsed := doJSON(t, r, "GET", fmt.Sprintf("/api/secteur/%d", secteurID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, dataField(t, parsed)["geometrie"])
}

func TestDistrictDeleteCascades(t *testing.T) {
	r := setupTest(t)

	_, parsed := doJSON(t, r, "POST", "/api/region", gin.H{"nom": "Diana"})
	regionID := idOf(t, parsed)
	_, parsed = doJSON(t, r, "POST", "/api/district", gin.H{"nom": "Ambanja", "regionId": regionID})
	districtID := idOf(t, parsed)

	_, parsed = doJSON(t, r, "POST", "/api/commune", gin.H{"nom": "Ambanja Ville", "districtId": districtID})
	commune1 := idOf(t, parsed)
	_, parsed = doJSON(t, r, "POST", "/api/commune", gin.H{"nom": "Antsakoamanondro", "districtId": districtID})
	commune2 := idOf(t, parsed)

	w, _ := doJSON(t, r, "DELETE", fmt.Sprintf("/api/district/%d", districtID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	for _, id := range []uint{commune1, commune2} {
		w, _ := doJSON(t, r, "GET", fmt.Sprintf("/api/commune/%d", id), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	}
}

func TestRegionListPagination(t *testing.T) {
	r := setupTest(t)

	for i := 0; i < 12; i++ {
		w, _ := doJSON(t, r, "POST", "/api/region", gin.H{"nom": fmt.Sprintf("Region %02d", i)})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, parsed := doJSON(t, r, "GET", "/api/region?page=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(12), parsed["total"])
	assert.Equal(t, float64(2), parsed["page"])
	assert.Equal(t, float64(2), parsed["totalPages"])
	rows := parsed["data"].([]interface{})
	assert.Len(t, rows, 2)

	// Without page the full set comes back.
	w, parsed = doJSON(t, r, "GET", "/api/region", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, parsed["data"].([]interface{}), 12)
	assert.Nil(t, parsed["total"])
}

func TestRegionSearchCaseInsensitive(t *testing.T) {
	r := setupTest(t)

	for _, nom := range []string{"Diana", "Boeny", "Atsinanana"} {
		doJSON(t, r, "POST", "/api/region", gin.H{"nom": nom})
	}

	w, parsed := doJSON(t, r, "GET", "/api/region?search=ana", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows := parsed["data"].([]interface{})
	require.Len(t, rows, 2)
	// Ordered by name ascending.
	assert.Equal(t, "Atsinanana", rows[0].(map[string]interface{})["nom"])
	assert.Equal(t, "Diana", rows[1].(map[string]interface{})["nom"])
}
