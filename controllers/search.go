package controllers

import (
	"errors"
	"net/http"
	"strings"
	"venuefinder-backend/config"
	"venuefinder-backend/middleware"
	"venuefinder-backend/models"
	"venuefinder-backend/services"
	"venuefinder-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VenueSummary is the list-view projection of a venue.
type VenueSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CategoryName string    `json:"category_name"`
	CategoryIcon string    `json:"category_icon"`
	City         string    `json:"city"`
	Area         string    `json:"area"`
	Address      string    `json:"address"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	PriceRange   string    `json:"price_range"`
	Rating       float64   `json:"rating"`
	Thumbnail    *string   `json:"thumbnail"`
}

// absoluteImageURL resolves a stored image reference against the request
// host unless it is already absolute.
func absoluteImageURL(c *gin.Context, image string) string {
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	if !strings.HasPrefix(image, "/") {
		image = "/" + image
	}
	return scheme + "://" + c.Request.Host + image
}

// venueThumbnail picks the representative image: images arrive ordered
// primary-first then newest-first, so the head of the slice is the
// primary image when one exists and the newest image otherwise.
func venueThumbnail(c *gin.Context, venue *models.Venue) *string {
	if len(venue.Images) == 0 {
		return nil
	}
	url := absoluteImageURL(c, venue.Images[0].Image)
	return &url
}

func venueSummary(c *gin.Context, venue *models.Venue) VenueSummary {
	return VenueSummary{
		ID:           venue.ID,
		Name:         venue.Name,
		CategoryName: venue.Category.Name,
		CategoryIcon: venue.Category.Icon,
		City:         venue.City,
		Area:         venue.Area,
		Address:      venue.Address,
		Latitude:     venue.Latitude,
		Longitude:    venue.Longitude,
		PriceRange:   venue.PriceRange,
		Rating:       venue.Rating,
		Thumbnail:    venueThumbnail(c, venue),
	}
}

// SearchVenues handles GET /api/search?category=&city=&area=.
func SearchVenues(c *gin.Context) {
	category := c.Query("category")
	city := c.Query("city")
	area := c.Query("area")

	var userID *uuid.UUID
	if id, ok := middleware.CurrentUserID(c); ok {
		userID = &id
	}

	searchService := services.SearchService{DB: config.DB}
	venues, err := searchService.Search(category, city, area, userID)
	if err != nil {
		if errors.Is(err, services.ErrMissingSearchParams) {
			utils.RespondWithError(c, http.StatusBadRequest, "Category and city are required")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Search failed")
		return
	}

	results := make([]VenueSummary, 0, len(venues))
	for i := range venues {
		results = append(results, venueSummary(c, &venues[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(results),
		"results": results,
	})
}
