package services

import (
	"log"
	"strings"
	"venuefinder-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchService runs venue searches and records per-user search history.
type SearchService struct {
	DB *gorm.DB
}

// Search filters active venues by category (slug or name, exact
// case-insensitive), city (case-insensitive substring) and, when given,
// area (case-insensitive substring). Results come back rating-first with
// a name tie-break. An authenticated caller gets a history row appended
// with the filter values as received, matches or not.
//
// Category and city are required after trimming; nothing is queried when
// either is missing.
func (s *SearchService) Search(category, city, area string, userID *uuid.UUID) ([]models.Venue, error) {
	trimmedCategory := strings.TrimSpace(category)
	trimmedCity := strings.TrimSpace(city)
	trimmedArea := strings.TrimSpace(area)

	if trimmedCategory == "" || trimmedCity == "" {
		return nil, ErrMissingSearchParams
	}

	query := s.DB.Model(&models.Venue{}).
		Select("venues.*").
		Joins("JOIN categories ON categories.id = venues.category_id").
		Where("venues.is_active = ?", true).
		Where("LOWER(categories.slug) = ? OR LOWER(categories.name) = ?",
			strings.ToLower(trimmedCategory), strings.ToLower(trimmedCategory)).
		Where("LOWER(venues.city) LIKE ?", "%"+strings.ToLower(trimmedCity)+"%")

	if trimmedArea != "" {
		query = query.Where("LOWER(venues.area) LIKE ?", "%"+strings.ToLower(trimmedArea)+"%")
	}

	var venues []models.Venue
	err := query.
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, uploaded_at DESC")
		}).
		Order("venues.rating DESC, venues.name ASC").
		Find(&venues).Error
	if err != nil {
		return nil, err
	}

	if userID != nil {
		history := models.SearchHistory{
			UserID:   *userID,
			Category: category,
			City:     city,
			Area:     area,
		}
		if err := s.DB.Create(&history).Error; err != nil {
			// History is best-effort; a failed write must not fail the search.
			log.Printf("Failed to record search history for user %s: %v", userID, err)
		}
	}

	return venues, nil
}
