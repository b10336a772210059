package services

import (
	"log"
	"os"
	"strconv"
	"time"
	"venuefinder-backend/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CleanupService prunes old search-history rows so the table stays
// bounded. Recent-search reads only ever need the last 10 entries.
type CleanupService struct {
	db *gorm.DB
}

func NewCleanupService(db *gorm.DB) *CleanupService {
	return &CleanupService{db: db}
}

func retentionDays() int {
	if env := os.Getenv("SEARCH_HISTORY_RETENTION_DAYS"); env != "" {
		if d, err := strconv.Atoi(env); err == nil && d > 0 {
			return d
		}
	}
	return 90
}

// StartScheduler runs the retention job nightly at 3 AM.
func (s *CleanupService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 3 * * *", func() {
		s.PruneOldSearchHistory()
	})

	c.Start()
	log.Println("Search history cleanup scheduler started")
}

// PruneOldSearchHistory deletes history rows older than the retention window.
func (s *CleanupService) PruneOldSearchHistory() {
	cutoff := time.Now().AddDate(0, 0, -retentionDays())

	result := s.db.Where("searched_at < ?", cutoff).Delete(&models.SearchHistory{})
	if result.Error != nil {
		log.Printf("Failed to prune old search history: %v", result.Error)
		return
	}
	log.Printf("Pruned %d search history rows older than %s", result.RowsAffected, cutoff.Format("2006-01-02"))
}
