package controllers

import (
	"errors"
	"net/http"
	"time"
	"venuefinder-backend/config"
	"venuefinder-backend/models"
	"venuefinder-backend/services"
	"venuefinder-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VenueImageResponse struct {
	ID        uuid.UUID `json:"id"`
	Image     string    `json:"image"`
	IsPrimary bool      `json:"is_primary"`
	Caption   string    `json:"caption"`
}

type AmenityResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Icon string    `json:"icon"`
}

// VenueDetailResponse is the full single-venue record.
type VenueDetailResponse struct {
	ID           uuid.UUID            `json:"id"`
	Name         string               `json:"name"`
	Category     CategoryResponse     `json:"category"`
	Description  string               `json:"description"`
	City         string               `json:"city"`
	Area         string               `json:"area"`
	Address      string               `json:"address"`
	Latitude     float64              `json:"latitude"`
	Longitude    float64              `json:"longitude"`
	PriceRange   string               `json:"price_range"`
	Rating       float64              `json:"rating"`
	PhoneNumber  string               `json:"phone_number"`
	Website      string               `json:"website"`
	OpeningHours models.JSONB         `json:"opening_hours"`
	Images       []VenueImageResponse `json:"images"`
	Amenities    []AmenityResponse    `json:"amenities_list"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// GetVenueDetail handles GET /api/venues/:id. A malformed id behaves
// like an unknown one: 404.
func GetVenueDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Venue not found")
		return
	}

	venueService := services.VenueService{DB: config.DB}
	venue, err := venueService.GetVenue(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Venue not found")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve venue")
		return
	}

	images := make([]VenueImageResponse, 0, len(venue.Images))
	for _, image := range venue.Images {
		images = append(images, VenueImageResponse{
			ID:        image.ID,
			Image:     absoluteImageURL(c, image.Image),
			IsPrimary: image.IsPrimary,
			Caption:   image.Caption,
		})
	}

	amenities := make([]AmenityResponse, 0, len(venue.Amenities))
	for _, link := range venue.Amenities {
		amenities = append(amenities, AmenityResponse{
			ID:   link.Amenity.ID,
			Name: link.Amenity.Name,
			Icon: link.Amenity.Icon,
		})
	}

	openingHours := venue.OpeningHours
	if openingHours == nil {
		openingHours = models.JSONB{}
	}

	c.JSON(http.StatusOK, VenueDetailResponse{
		ID:           venue.ID,
		Name:         venue.Name,
		Category:     categoryResponse(&venue.Category),
		Description:  venue.Description,
		City:         venue.City,
		Area:         venue.Area,
		Address:      venue.Address,
		Latitude:     venue.Latitude,
		Longitude:    venue.Longitude,
		PriceRange:   venue.PriceRange,
		Rating:       venue.Rating,
		PhoneNumber:  venue.PhoneNumber,
		Website:      venue.Website,
		OpeningHours: openingHours,
		Images:       images,
		Amenities:    amenities,
		CreatedAt:    venue.CreatedAt,
		UpdatedAt:    venue.UpdatedAt,
	})
}
