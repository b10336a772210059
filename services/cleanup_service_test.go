package services

import (
	"testing"
	"time"
	"venuefinder-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPruneOldSearchHistory(t *testing.T) {
	db := setupTestDB(t)
	service := NewCleanupService(db)

	user := models.User{Username: "ama", Email: "ama@example.com", Password: "sturdy-harbor-42", IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	old := models.SearchHistory{
		UserID: user.ID, Category: "restaurant", City: "Accra",
		SearchedAt: time.Now().AddDate(0, 0, -120),
	}
	recent := models.SearchHistory{
		UserID: user.ID, Category: "cafe", City: "Kumasi",
		SearchedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Create(&recent).Error)

	service.PruneOldSearchHistory()

	var remaining []models.SearchHistory
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Kumasi", remaining[0].City)
}

func TestPruneRespectsConfiguredRetention(t *testing.T) {
	t.Setenv("SEARCH_HISTORY_RETENTION_DAYS", "7")

	db := setupTestDB(t)
	service := NewCleanupService(db)

	user := models.User{Username: "kofi", Email: "kofi@example.com", Password: "sturdy-harbor-42", IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	tenDaysOld := models.SearchHistory{
		UserID: user.ID, Category: "bar", City: "Takoradi",
		SearchedAt: time.Now().AddDate(0, 0, -10),
	}
	require.NoError(t, db.Create(&tenDaysOld).Error)

	service.PruneOldSearchHistory()

	var count int64
	db.Model(&models.SearchHistory{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
