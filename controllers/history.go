package controllers

import (
	"net/http"
	"time"
	"venuefinder-backend/config"
	"venuefinder-backend/middleware"
	"venuefinder-backend/services"
	"venuefinder-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SearchHistoryResponse struct {
	ID         uuid.UUID `json:"id"`
	Category   string    `json:"category"`
	City       string    `json:"city"`
	Area       string    `json:"area"`
	SearchedAt time.Time `json:"searched_at"`
}

// GetSearchHistory returns the caller's last 10 searches, newest first.
func GetSearchHistory(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	historyService := services.HistoryService{DB: config.DB}
	history, err := historyService.RecentSearches(userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve search history")
		return
	}

	response := make([]SearchHistoryResponse, 0, len(history))
	for _, entry := range history {
		response = append(response, SearchHistoryResponse{
			ID:         entry.ID,
			Category:   entry.Category,
			City:       entry.City,
			Area:       entry.Area,
			SearchedAt: entry.SearchedAt,
		})
	}
	c.JSON(http.StatusOK, response)
}
