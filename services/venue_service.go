package services

import (
	"errors"
	"venuefinder-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VenueService serves the category catalog and single-venue detail reads.
type VenueService struct {
	DB *gorm.DB
}

// ListActiveCategories returns the active categories ordered by name.
// The set is small and seeded, so there is no pagination.
func (s *VenueService) ListActiveCategories() ([]models.Category, error) {
	var categories []models.Category
	err := s.DB.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

// GetVenue loads one active venue with its category, its images in
// display order and its amenities. Inactive and unknown ids both come
// back as ErrNotFound.
func (s *VenueService) GetVenue(id uuid.UUID) (*models.Venue, error) {
	var venue models.Venue
	err := s.DB.
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, uploaded_at DESC")
		}).
		Preload("Amenities.Amenity").
		Where("is_active = ?", true).
		First(&venue, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &venue, nil
}
