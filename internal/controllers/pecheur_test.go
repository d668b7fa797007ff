package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createPecheur creates a survey flagged estPecheur and returns the id of
// the fisher profile created alongside it.
func createPecheur(t *testing.T, r *gin.Engine) uint {
	t.Helper()
	w, parsed := doJSON(t, r, "POST", "/api/enquete_famille", gin.H{
		"nomRepondant": "Rabe Paul",
		"estPecheur":   true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	pecheur := dataField(t, parsed)["pecheur"].(map[string]interface{})
	return uint(pecheur["ID"].(float64))
}

func TestPratiqueOnePerSpecies(t *testing.T) {
	r := setupTest(t)
	pecheurID := createPecheur(t, r)

	w, _ := doJSON(t, r, "POST", "/api/activite_peche", gin.H{
		"especeCible": "Tuna", "techniquePeche": "ligne", "pecheurId": pecheurID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, parsed := doJSON(t, r, "POST", "/api/activite_peche", gin.H{
		"especeCible": "Tuna", "techniquePeche": "filet", "pecheurId": pecheurID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Pratique for this espece cible already exists for this pecheur", parsed["error"])

	w, _ = doJSON(t, r, "POST", "/api/activite_peche", gin.H{
		"especeCible": "Swordfish", "pecheurId": pecheurID,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestPratiqueUpdateSpeciesConflict(t *testing.T) {
	r := setupTest(t)
	pecheurID := createPecheur(t, r)

	w, _ := doJSON(t, r, "POST", "/api/activite_peche", gin.H{"especeCible": "Tuna", "pecheurId": pecheurID})
	require.Equal(t, http.StatusCreated, w.Code)
	w, parsed := doJSON(t, r, "POST", "/api/activite_peche", gin.H{"especeCible": "Swordfish", "pecheurId": pecheurID})
	require.Equal(t, http.StatusCreated, w.Code)
	swordfishID := idOf(t, parsed)

	w, _ = doJSON(t, r, "PUT", fmt.Sprintf("/api/activite_peche/%d", swordfishID), gin.H{"especeCible": "Tuna"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Keeping the same species while patching other fields is fine.
	w, _ = doJSON(t, r, "PUT", fmt.Sprintf("/api/activite_peche/%d", swordfishID), gin.H{
		"especeCible": "Swordfish", "techniquePeche": "harpon",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPratiqueUnknownPecheur(t *testing.T) {
	r := setupTest(t)

	w, parsed := doJSON(t, r, "POST", "/api/activite_peche", gin.H{"especeCible": "Tuna", "pecheurId": 99})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Pecheur not found", parsed["error"])
}

func TestCircuitDestinationReplace(t *testing.T) {
	r := setupTest(t)
	pecheurID := createPecheur(t, r)

	w, parsed := doJSON(t, r, "POST", "/api/circ_commerc", gin.H{
		"typeProduit": "poisson frais",
		"modeVente":   "marche local",
		"pecheurId":   pecheurID,
		"destinations": []gin.H{
			{"nom": "Antananarivo", "pourcentage": 50},
			{"nom": "Toamasina", "pourcentage": 30},
			{"nom": "local", "pourcentage": 20},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	circuitID := idOf(t, parsed)

	w, _ = doJSON(t, r, "PUT", fmt.Sprintf("/api/circ_commerc/%d", circuitID), gin.H{
		"destinations": []gin.H{
			{"nom": "Mahajanga", "pourcentage": 60},
			{"nom": "local", "pourcentage": 40},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, parsed = doJSON(t, r, "GET", fmt.Sprintf("/api/circ_commerc/%d", circuitID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	dests := dataField(t, parsed)["destinations"].([]interface{})
	require.Len(t, dests, 2)
	names := map[string]bool{}
	for _, d := range dests {
		names[d.(map[string]interface{})["nom"].(string)] = true
	}
	assert.True(t, names["Mahajanga"] && names["local"])
}

func TestCircuitDestinationPourcentageBounds(t *testing.T) {
	r := setupTest(t)
	pecheurID := createPecheur(t, r)

	w, parsed := doJSON(t, r, "POST", "/api/circ_commerc", gin.H{
		"typeProduit":  "crevette",
		"pecheurId":    pecheurID,
		"destinations": []gin.H{{"nom": "export", "pourcentage": 130}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Destination pourcentage must be between 0 and 100", parsed["error"])

	// Splits that do not sum to 100 are accepted.
	w, _ = doJSON(t, r, "POST", "/api/circ_commerc", gin.H{
		"typeProduit":  "crevette",
		"pecheurId":    pecheurID,
		"destinations": []gin.H{{"nom": "export", "pourcentage": 30}},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}
