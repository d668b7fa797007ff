package geoimport_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"enquete_peche/internal/config"
	"enquete_peche/internal/geoimport"
	"enquete_peche/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "geographie.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const fixtureJSON = `[
  {
    "region": "Diana",
    "communes": [
      {"nom": "Ambanja", "district": "Ambanja", "fokontany": ["Ambanja Centre", "Antsakoamanondro"]},
      {"nom": "Nosy Be", "district": "Nosy Be", "fokontany": ["Hell-Ville"]}
    ]
  },
  {
    "region": "Boeny",
    "communes": [
      {"nom": "Mahajanga I", "district": "Mahajanga", "fokontany": ["Mahabibo"]}
    ]
  }
]`

func TestRunImportsTree(t *testing.T) {
	db := openTestDB(t)
	fixtures, err := geoimport.Load(writeFixture(t, fixtureJSON))
	require.NoError(t, err)

	summary, err := geoimport.Run(db, fixtures)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.RegionsCreated)
	assert.Equal(t, 3, summary.DistrictsCreated)
	assert.Equal(t, 3, summary.CommunesCreated)
	assert.Equal(t, 4, summary.FokontanyCreated)

	var district models.District
	require.NoError(t, db.Where("nom = ?", "Ambanja").First(&district).Error)
	var region models.Region
	require.NoError(t, db.First(&region, district.RegionID).Error)
	assert.Equal(t, "Diana", region.Nom)
}

func TestRunIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	fixtures, err := geoimport.Load(writeFixture(t, fixtureJSON))
	require.NoError(t, err)

	_, err = geoimport.Run(db, fixtures)
	require.NoError(t, err)

	second, err := geoimport.Run(db, fixtures)
	require.NoError(t, err)
	assert.Equal(t, geoimport.Summary{}, second)

	var regions, districts, communes, fokontany int64
	db.Model(&models.Region{}).Count(&regions)
	db.Model(&models.District{}).Count(&districts)
	db.Model(&models.Commune{}).Count(&communes)
	db.Model(&models.Fokontany{}).Count(&fokontany)
	assert.Equal(t, int64(2), regions)
	assert.Equal(t, int64(3), districts)
	assert.Equal(t, int64(3), communes)
	assert.Equal(t, int64(4), fokontany)
}

func TestLoadRejectsMalformedFixture(t *testing.T) {
	_, err := geoimport.Load(writeFixture(t, `{"not": "an array"}`))
	assert.Error(t, err)

	_, err = geoimport.Load("/nonexistent/geographie.json")
	assert.Error(t, err)
}

func TestRunSharesNamesAcrossRegions(t *testing.T) {
	db := openTestDB(t)
	fixtures := []geoimport.RegionFixture{
		{Region: "Diana", Communes: []geoimport.CommuneFixture{{Nom: "Centre", District: "Nord"}}},
		{Region: "Boeny", Communes: []geoimport.CommuneFixture{{Nom: "Centre", District: "Nord"}}},
	}

	summary, err := geoimport.Run(db, fixtures)
	require.NoError(t, err)

	// Same district and commune names under different regions stay distinct rows.
	assert.Equal(t, 2, summary.DistrictsCreated)
	assert.Equal(t, 2, summary.CommunesCreated)
}
