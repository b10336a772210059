package services

import (
	"log"
	"venuefinder-backend/models"

	"gorm.io/gorm"
)

// SeedService installs the baseline categories and amenities. It is
// idempotent: rows already present are left untouched.
type SeedService struct {
	DB *gorm.DB
}

var seedCategories = []models.Category{
	{Name: "Restaurants", Slug: "restaurant", Icon: "🍽️", Description: "Great places to eat"},
	{Name: "Cafes", Slug: "cafe", Icon: "☕", Description: "Coffee and snacks"},
	{Name: "Entertainment", Slug: "entertainment", Icon: "🎪", Description: "Fun and games"},
	{Name: "Lounges", Slug: "lounge", Icon: "🛋️", Description: "Relaxation spots"},
	{Name: "Cinemas", Slug: "cinema", Icon: "🎬", Description: "Movie theaters"},
	{Name: "Bars", Slug: "bar", Icon: "🍺", Description: "Drinks and nightlife"},
}

var seedAmenities = []models.Amenity{
	{Name: "WiFi", Icon: "📶"},
	{Name: "Parking", Icon: "🅿️"},
	{Name: "Outdoor Seating", Icon: "🌳"},
	{Name: "Air Conditioning", Icon: "❄️"},
	{Name: "Card Payment", Icon: "💳"},
	{Name: "Wheelchair Accessible", Icon: "♿"},
	{Name: "Live Music", Icon: "🎵"},
	{Name: "Delivery Available", Icon: "🚚"},
	{Name: "Pet Friendly", Icon: "🐕"},
	{Name: "Private Rooms", Icon: "🚪"},
}

// Run seeds categories and amenities, logging what was created.
func (s *SeedService) Run() error {
	log.Println("Setting up categories and amenities...")

	for _, category := range seedCategories {
		result := s.DB.Where(models.Category{Slug: category.Slug}).
			Attrs(models.Category{
				Name:        category.Name,
				Icon:        category.Icon,
				Description: category.Description,
				IsActive:    true,
			}).
			FirstOrCreate(&models.Category{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			log.Printf("Created category: %s", category.Name)
		} else {
			log.Printf("Category already exists: %s", category.Name)
		}
	}

	for _, amenity := range seedAmenities {
		result := s.DB.Where(models.Amenity{Name: amenity.Name}).
			Attrs(models.Amenity{Icon: amenity.Icon}).
			FirstOrCreate(&models.Amenity{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			log.Printf("Created amenity: %s", amenity.Name)
		} else {
			log.Printf("Amenity already exists: %s", amenity.Name)
		}
	}

	var categoryCount, amenityCount int64
	s.DB.Model(&models.Category{}).Count(&categoryCount)
	s.DB.Model(&models.Amenity{}).Count(&amenityCount)
	log.Printf("Setup completed. Categories: %d, Amenities: %d", categoryCount, amenityCount)
	return nil
}
