package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enquete_peche/internal/config"
	"enquete_peche/internal/models"
)

func TestStats(t *testing.T) {
	r := setupTest(t)

	w, parsed := doJSON(t, r, "POST", "/api/enquete_famille", gin.H{
		"nomRepondant": "Rabe", "estPecheur": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	pecheurID := uint(dataField(t, parsed)["pecheur"].(map[string]interface{})["ID"].(float64))

	w, parsed = doJSON(t, r, "POST", "/api/enquete_famille", gin.H{
		"nomRepondant": "Rasoa", "estCollecteur": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	collecteurID := uint(dataField(t, parsed)["collecteur"].(map[string]interface{})["ID"].(float64))

	for _, e := range []string{"filet", "filet", "ligne"} {
		w, _ = doJSON(t, r, "POST", "/api/equip_peche", gin.H{"typeEquipement": e, "pecheurId": pecheurID})
		require.Equal(t, http.StatusCreated, w.Code)
	}
	w, _ = doJSON(t, r, "POST", "/api/embarc_peche", gin.H{
		"typeEmbarcation": "pirogue", "modeAcquisition": "achat", "pecheurId": pecheurID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = doJSON(t, r, "POST", "/api/produit-achete", gin.H{
		"typeProduit":           "poisson frais",
		"prixAchatAvantCovid":   4000,
		"prixAchatPendantCovid": 3000,
		"prixAchatApresCovid":   5000,
		"collecteurId":          collecteurID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, parsed = doJSON(t, r, "GET", "/api/stat", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, parsed)

	assert.Equal(t, float64(2), data["totalEnquetes"])
	assert.Equal(t, float64(1), data["totalPecheurs"])
	assert.Equal(t, float64(1), data["totalCollecteurs"])

	top := data["topEquipements"].([]interface{})
	require.NotEmpty(t, top)
	first := top[0].(map[string]interface{})
	assert.Equal(t, "filet", first["typeEquipement"])
	assert.Equal(t, float64(2), first["total"])

	modes := data["modesAcquisition"].([]interface{})
	require.Len(t, modes, 1)
	assert.Equal(t, "achat", modes[0].(map[string]interface{})["modeAcquisition"])

	prix := data["prixCovid"].([]interface{})
	require.Len(t, prix, 1)
	row := prix[0].(map[string]interface{})
	assert.Equal(t, "poisson frais", row["typeProduit"])
	assert.Equal(t, float64(3000), row["pendant"])
}

func TestStatsEmptyDatabase(t *testing.T) {
	r := setupTest(t)

	w, parsed := doJSON(t, r, "GET", "/api/stat", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, parsed)
	assert.Equal(t, float64(0), data["totalEnquetes"])
}

func TestStatsAggregateFailure(t *testing.T) {
	r := setupTest(t)
	require.NoError(t, config.DB.Migrator().DropTable(&models.EquipementPeche{}))

	w, parsed := doJSON(t, r, "GET", "/api/stat", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to compute stats", parsed["error"])
}
