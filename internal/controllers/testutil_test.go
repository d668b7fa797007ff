package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"enquete_peche/internal/config"
	"enquete_peche/internal/routes"
)

// setupTest points the global handle at a fresh in-memory database and
// returns the full router.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	return routes.SetupRouter()
}

// doJSON performs one request against the router and decodes the JSON body.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func dataField(t *testing.T, parsed map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := parsed["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %v", parsed)
	return data
}

func idOf(t *testing.T, parsed map[string]interface{}) uint {
	t.Helper()
	data := dataField(t, parsed)
	id, ok := data["ID"].(float64)
	require.True(t, ok, "data has no ID: %v", data)
	return uint(id)
}

// seedGeography creates one full branch of the tree and returns the secteur
// id.
func seedGeography(t *testing.T, r *gin.Engine) uint {
	t.Helper()

	w, parsed := doJSON(t, r, "POST", "/api/region", gin.H{"nom": "Diana"})
	require.Equal(t, 201, w.Code)
	regionID := idOf(t, parsed)

	w, parsed = doJSON(t, r, "POST", "/api/district", gin.H{"nom": "Nosy Be", "regionId": regionID})
	require.Equal(t, 201, w.Code)
	districtID := idOf(t, parsed)

	w, parsed = doJSON(t, r, "POST", "/api/commune", gin.H{"nom": "Nosy Be", "districtId": districtID})
	require.Equal(t, 201, w.Code)
	communeID := idOf(t, parsed)

	w, parsed = doJSON(t, r, "POST", "/api/fokontany", gin.H{"nom": "Ambatoloaka", "communeId": communeID})
	require.Equal(t, 201, w.Code)
	fokontanyID := idOf(t, parsed)

	w, parsed = doJSON(t, r, "POST", "/api/secteur", gin.H{"nom": "Secteur A", "fokontanyId": fokontanyID})
	require.Equal(t, 200, w.Code)
	return idOf(t, parsed)
}
