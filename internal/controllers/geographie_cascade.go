package controllers

import (
	"gorm.io/gorm"

	"enquete_peche/internal/models"
)

// The geography tree is deleted level by level inside the caller's
// transaction. Surveys referencing a removed secteur keep their row but lose
// the link, mirroring the SET NULL constraint style used elsewhere.

func deleteSecteurs(tx *gorm.DB, secteurIDs []uint) error {
	if len(secteurIDs) == 0 {
		return nil
	}
	if err := tx.Model(&models.Enquete{}).Where("secteur_id IN ?", secteurIDs).Update("secteur_id", nil).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", secteurIDs).Delete(&models.Secteur{}).Error
}

func deleteFokontanyTree(tx *gorm.DB, fokontanyIDs []uint) error {
	if len(fokontanyIDs) == 0 {
		return nil
	}
	var secteurIDs []uint
	if err := tx.Model(&models.Secteur{}).Where("fokontany_id IN ?", fokontanyIDs).Pluck("id", &secteurIDs).Error; err != nil {
		return err
	}
	if err := deleteSecteurs(tx, secteurIDs); err != nil {
		return err
	}
	return tx.Where("id IN ?", fokontanyIDs).Delete(&models.Fokontany{}).Error
}

func deleteCommuneTree(tx *gorm.DB, communeIDs []uint) error {
	if len(communeIDs) == 0 {
		return nil
	}
	var fokontanyIDs []uint
	if err := tx.Model(&models.Fokontany{}).Where("commune_id IN ?", communeIDs).Pluck("id", &fokontanyIDs).Error; err != nil {
		return err
	}
	if err := deleteFokontanyTree(tx, fokontanyIDs); err != nil {
		return err
	}
	return tx.Where("id IN ?", communeIDs).Delete(&models.Commune{}).Error
}

func deleteDistrictTree(tx *gorm.DB, districtIDs []uint) error {
	if len(districtIDs) == 0 {
		return nil
	}
	var communeIDs []uint
	if err := tx.Model(&models.Commune{}).Where("district_id IN ?", districtIDs).Pluck("id", &communeIDs).Error; err != nil {
		return err
	}
	if err := deleteCommuneTree(tx, communeIDs); err != nil {
		return err
	}
	return tx.Where("id IN ?", districtIDs).Delete(&models.District{}).Error
}
