// Package geoimport loads the reference geography fixture and upserts the
// region → district → commune → fokontany tree, keyed on name + parent so
// re-running the import changes nothing.
package geoimport

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"enquete_peche/internal/models"
)

// CommuneFixture describes one commune of the fixture, with the name of its
// district embedded the way the source data ships it.
type CommuneFixture struct {
	Nom       string   `json:"nom"`
	District  string   `json:"district"`
	Fokontany []string `json:"fokontany"`
}

// RegionFixture is one top-level entry of the fixture file.
type RegionFixture struct {
	Region   string           `json:"region"`
	Communes []CommuneFixture `json:"communes"`
}

// Summary counts what the import actually inserted; existing rows are left
// untouched.
type Summary struct {
	RegionsCreated   int
	DistrictsCreated int
	CommunesCreated  int
	FokontanyCreated int
}

// Load reads and parses the fixture file.
func Load(path string) ([]RegionFixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var fixtures []RegionFixture
	if err := json.Unmarshal(raw, &fixtures); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return fixtures, nil
}

// Run upserts the whole tree, one transaction per region.
func Run(db *gorm.DB, fixtures []RegionFixture) (Summary, error) {
	var summary Summary
	for _, rf := range fixtures {
		if err := db.Transaction(func(tx *gorm.DB) error {
			return importRegion(tx, rf, &summary)
		}); err != nil {
			return summary, fmt.Errorf("import region %q: %w", rf.Region, err)
		}
	}
	return summary, nil
}

func importRegion(tx *gorm.DB, rf RegionFixture, summary *Summary) error {
	region := models.Region{Nom: rf.Region}
	res := tx.Where(models.Region{Nom: rf.Region}).FirstOrCreate(&region)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		summary.RegionsCreated++
	}

	for _, cf := range rf.Communes {
		district := models.District{Nom: cf.District, RegionID: region.ID}
		res = tx.Where(models.District{Nom: cf.District, RegionID: region.ID}).FirstOrCreate(&district)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			summary.DistrictsCreated++
		}

		commune := models.Commune{Nom: cf.Nom, DistrictID: district.ID}
		res = tx.Where(models.Commune{Nom: cf.Nom, DistrictID: district.ID}).FirstOrCreate(&commune)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			summary.CommunesCreated++
		}

		for _, fkt := range cf.Fokontany {
			fokontany := models.Fokontany{Nom: fkt, CommuneID: commune.ID}
			res = tx.Where(models.Fokontany{Nom: fkt, CommuneID: commune.ID}).FirstOrCreate(&fokontany)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				summary.FokontanyCreated++
			}
		}
	}

	logrus.WithField("region", rf.Region).Info("geoimport: region processed")
	return nil
}
