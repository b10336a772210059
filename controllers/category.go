package controllers

import (
	"net/http"
	"venuefinder-backend/config"
	"venuefinder-backend/models"
	"venuefinder-backend/services"
	"venuefinder-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
}

func categoryResponse(category *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Icon:        category.Icon,
		Description: category.Description,
	}
}

// GetCategories lists active categories, name ascending.
func GetCategories(c *gin.Context) {
	venueService := services.VenueService{DB: config.DB}
	categories, err := venueService.ListActiveCategories()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	response := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		response = append(response, categoryResponse(&categories[i]))
	}
	c.JSON(http.StatusOK, response)
}
