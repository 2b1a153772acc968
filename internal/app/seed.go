package app

import (
	"gorm.io/gorm"

	"github.com/okazmarkt/core/internal/models"
)

// seedCategories inserts the base taxonomy on first start. Slugs feed the
// category-type classifier, so the seed stays aligned with its dispatch map.
func seedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MarketCategoryModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tree := map[string][]string{
		"real-estate": {"real-estate-sale", "real-estate-rent", "real-estate-apartments", "real-estate-houses", "real-estate-land", "real-estate-commercial", "real-estate-garages"},
		"transport":   {"transport-cars", "transport-motorcycles", "transport-trucks", "transport-special-equipment", "transport-water"},
		"jobs":        {"jobs-vacancies", "jobs-resumes"},
		"electronics": {"electronics-phones-tablets", "electronics-computers", "electronics-photo-video", "electronics-tv-audio", "electronics-appliances"},
		"fashion":     {"fashion-women", "fashion-men", "fashion-kids"},
		"home":        {"home-furniture", "home-decoration", "home-appliances"},
		"baby-kids":   {"baby-kids-clothing", "baby-kids-toys", "baby-kids-gear"},
		"pets":        {"pets-dogs", "pets-cats", "pets-accessories"},
		"sports":      {"sports-cycling", "sports-fitness", "sports-team-sports"},
		"services":    {"services-home", "services-beauty", "services-tutoring"},
		"other":       nil,
	}

	return db.Transaction(func(tx *gorm.DB) error {
		sort := 0
		for rootSlug, children := range tree {
			root := models.MarketCategoryModel{
				Slug:    rootSlug,
				NameKey: "category." + rootSlug + ".name",
				Sort:    sort,
				Active:  true,
			}
			if err := tx.Create(&root).Error; err != nil {
				return err
			}
			sort++
			for i, childSlug := range children {
				child := models.MarketCategoryModel{
					Slug:     childSlug,
					NameKey:  "category." + childSlug + ".name",
					ParentID: &root.ID,
					Sort:     i,
					Active:   true,
				}
				if err := tx.Create(&child).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
