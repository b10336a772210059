package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups venues (Restaurants, Cafes, Bars, ...). Rows are seeded
// once and soft-deactivated via IsActive rather than deleted.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Slug        string    `gorm:"uniqueIndex;not null"`
	Icon        string    `gorm:"default:'📍'"`
	Description string
	IsActive    bool      `gorm:"default:true"`
	CreatedAt   time.Time

	Venues []Venue `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
