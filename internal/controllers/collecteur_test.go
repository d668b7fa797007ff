package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createCollecteur creates a survey flagged estCollecteur and returns the id
// of the collector profile created alongside it.
func createCollecteur(t *testing.T, r *gin.Engine) uint {
	t.Helper()
	w, parsed := doJSON(t, r, "POST", "/api/enquete_famille", gin.H{
		"nomRepondant":  "Rasoa Marie",
		"estCollecteur": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	collecteur := dataField(t, parsed)["collecteur"].(map[string]interface{})
	return uint(collecteur["ID"].(float64))
}

func TestProduitOnePerType(t *testing.T) {
	r := setupTest(t)
	collecteurID := createCollecteur(t, r)

	w, _ := doJSON(t, r, "POST", "/api/produit-achete", gin.H{
		"typeProduit":       "poisson frais",
		"quantiteAnnuelle":  1200,
		"especesCollectees": []string{"Tuna", "Capitaine"},
		"collecteurId":      collecteurID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, parsed := doJSON(t, r, "POST", "/api/produit-achete", gin.H{
		"typeProduit":  "poisson frais",
		"collecteurId": collecteurID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Produit of this type already exists for this collecteur", parsed["error"])

	w, _ = doJSON(t, r, "POST", "/api/produit-achete", gin.H{
		"typeProduit":  "poisson fume",
		"collecteurId": collecteurID,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestProduitEspecesRoundTrip(t *testing.T) {
	r := setupTest(t)
	collecteurID := createCollecteur(t, r)

	w, parsed := doJSON(t, r, "POST", "/api/produit-achete", gin.H{
		"typeProduit":       "crevette",
		"especesCollectees": []string{"Penaeus", "Macrobrachium"},
		"collecteurId":      collecteurID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	produitID := idOf(t, parsed)

	w, parsed = doJSON(t, r, "GET", fmt.Sprintf("/api/produit-achete/%d", produitID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	especes := dataField(t, parsed)["especesCollectees"].([]interface{})
	require.Len(t, especes, 2)
	assert.Equal(t, "Penaeus", especes[0])
}

func TestCollecteurUpdateLists(t *testing.T) {
	r := setupTest(t)
	collecteurID := createCollecteur(t, r)

	w, parsed := doJSON(t, r, "PUT", fmt.Sprintf("/api/collecteur/%d", collecteurID), gin.H{
		"lieuxCollecte":    []string{"Nosy Be", "Ambanja"},
		"moyensTransport":  []string{"pirogue"},
		"anneesExperience": 8,
	})
	require.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, parsed)
	lieux := data["lieuxCollecte"].([]interface{})
	require.Len(t, lieux, 2)
	assert.Equal(t, "Nosy Be", lieux[0])
	assert.Equal(t, float64(8), data["anneesExperience"])
}

func TestProduitUnknownCollecteur(t *testing.T) {
	r := setupTest(t)

	w, parsed := doJSON(t, r, "POST", "/api/produit-achete", gin.H{"typeProduit": "crabe", "collecteurId": 42})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Collecteur not found", parsed["error"])
}
