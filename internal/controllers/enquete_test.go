package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createEnqueteur(t *testing.T, r *gin.Engine) uint {
	t.Helper()
	w, parsed := doJSON(t, r, "POST", "/api/enqueteur", gin.H{"nom": "Rakoto Jean", "code": "ENQ-01"})
	require.Equal(t, http.StatusCreated, w.Code)
	return idOf(t, parsed)
}

func TestCreateEnqueteWithFamilyRoundTrip(t *testing.T) {
	r := setupTest(t)
	secteurID := seedGeography(t, r)
	enqueteurID := createEnqueteur(t, r)

	membres := []gin.H{
		{"nom": "Voahangy", "age": 34, "sexe": "F", "lienFamilial": "epouse"},
		{"nom": "Feno", "age": 12, "sexe": "M", "lienFamilial": "enfant"},
		{"nom": "Hery", "age": 9, "sexe": "M", "lienFamilial": "enfant"},
	}
	w, parsed := doJSON(t, r, "POST", "/api/enquete_famille", gin.H{
		"nomRepondant":   "Rabe Paul",
		"age":            41,
		"sexe":           "M",
		"enqueteurId":    enqueteurID,
		"secteurId":      secteurID,
		"membresFamille": membres,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	enqueteID := idOf(t, parsed)

	w, parsed = doJSON(t, r, "GET", fmt.Sprintf("/api/enquete_famille/%d", enqueteID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, parsed)

	got := data["membresFamille"].([]interface{})
	require.Len(t, got, 3)
	names := map[string]bool{}
	for _, m := range got {
		names[m.(map[string]interface{})["nom"].(string)] = true
	}
	assert.True(t, names["Voahangy"] && names["Feno"] && names["Hery"])
}

func TestCreateEnqueteUnknownRefs(t *testing.T) {
	r := setupTest(t)

	w, parsed := doJSON(t, r, "POST", "/api/enquete_famille", gin.H{"nomRepondant": "Rabe", "enqueteurId": 77})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Enqueteur not found", parsed["error"])

	w, parsed = doJSON(t, r, "POST", "/api/enquete_famille", gin.H{"nomRepondant": "Rabe", "secteurId": 77})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Secteur not found", parsed["error"])
}

func TestUpdateEnquetePreservesDate(t *testing.T) {
	r := setupTest(t)

	w, parsed := doJSON(t, r, "POST", "/api/enquete_famille", gin.H{
		"nomRepondant": "Rabe Paul",
		"dateEnquete":  "2023-06-15T08:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	enqueteID := idOf(t, parsed)
	before := dataField(t, parsed)["dateEnquete"]

	w, parsed = doJSON(t, r, "PUT", fmt.Sprintf("/api/enquete_famille/%d", enqueteID), gin.H{"age": 42})
	require.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, parsed)
	assert.Equal(t, before, data["dateEnquete"])
	assert.Equal(t, float64(42), data["age"])
}

func TestUpdateEnqueteReplacesFamilyWholesale(t *testing.T) {
	r := setupTest(t)

	w, parsed := doJSON(t, r, "POST", "/api/enquete_famille", gin.H{
		"nomRepondant": "Rabe Paul",
		"membresFamille": []gin.H{
			{"nom": "A", "age": 30},
			{"nom": "B", "age": 25},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	enqueteID := idOf(t, parsed)

	w, parsed = doJSON(t, r, "PUT", fmt.Sprintf("/api/enquete_famille/%d", enqueteID), gin.H{
		"membresFamille": []gin.H{
			{"nom": "C", "age": 50},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, parsed = doJSON(t, r, "GET", fmt.Sprintf("/api/enquete_famille/%d", enqueteID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := dataField(t, parsed)["membresFamille"].([]interface{})
	require.Len(t, got, 1)
	assert.Equal(t, "C", got[0].(map[string]interface{})["nom"])
}

func TestEnqueteProfileAutoCreation(t *testing.T) {
	r := setupTest(t)

	w, parsed := doJSON(t, r, "POST", "/api/enquete_famille", gin.H{
		"nomRepondant":  "Rabe Paul",
		"estPecheur":    true,
		"estCollecteur": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, parsed)

	require.NotNil(t, data["pecheur"], "estPecheur should create a fisher profile")
	require.NotNil(t, data["collecteur"], "estCollecteur should create a collector profile")
}

func TestDeleteEnqueteCascades(t *testing.T) {
	r := setupTest(t)

	w, parsed := doJSON(t, r, "POST", "/api/enquete_famille", gin.H{
		"nomRepondant":   "Rabe Paul",
		"estPecheur":     true,
		"membresFamille": []gin.H{{"nom": "A"}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	enqueteID := idOf(t, parsed)
	pecheurID := uint(dataField(t, parsed)["pecheur"].(map[string]interface{})["ID"].(float64))

	w, _ = doJSON(t, r, "DELETE", fmt.Sprintf("/api/enquete_famille/%d", enqueteID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, "GET", fmt.Sprintf("/api/enquete_famille/%d", enqueteID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = doJSON(t, r, "GET", fmt.Sprintf("/api/pecheur/%d", pecheurID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEnqueteurDeleteThenRecreate(t *testing.T) {
	r := setupTest(t)
	enqueteurID := createEnqueteur(t, r)

	w, _ := doJSON(t, r, "DELETE", fmt.Sprintf("/api/enqueteur/%d", enqueteurID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The identity is free again once the surveyor is gone.
	w, _ = doJSON(t, r, "POST", "/api/enqueteur", gin.H{"nom": "Rakoto Jean", "code": "ENQ-01"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestEnqueteurUniqueness(t *testing.T) {
	r := setupTest(t)

	w, _ := doJSON(t, r, "POST", "/api/enqueteur", gin.H{"nom": "Rakoto", "code": "ENQ-01"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, parsed := doJSON(t, r, "POST", "/api/enqueteur", gin.H{"nom": "Rakoto", "code": "ENQ-02"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, parsed["error"], "already exists")

	w, _ = doJSON(t, r, "POST", "/api/enqueteur", gin.H{"nom": "Rasoa", "code": "ENQ-02"})
	assert.Equal(t, http.StatusCreated, w.Code)
}
