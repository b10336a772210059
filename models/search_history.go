package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchHistory records one venue search by an authenticated user. Rows
// are append-only; they are written with the filter values exactly as
// received, even when the search matched nothing.
type SearchHistory struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Category string    `gorm:"not null"`
	City     string    `gorm:"not null"`
	Area     string

	SearchedAt time.Time `gorm:"autoCreateTime;index"`
}

func (h *SearchHistory) BeforeCreate(tx *gorm.DB) (err error) {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return
}
