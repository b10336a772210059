package services

import (
	"venuefinder-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const recentSearchLimit = 10

// HistoryService reads back a user's recent searches.
type HistoryService struct {
	DB *gorm.DB
}

// RecentSearches returns the caller's last 10 searches, newest first.
func (s *HistoryService) RecentSearches(userID uuid.UUID) ([]models.SearchHistory, error) {
	var history []models.SearchHistory
	err := s.DB.
		Where("user_id = ?", userID).
		Order("searched_at DESC").
		Limit(recentSearchLimit).
		Find(&history).Error
	return history, err
}
