package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Amenity is a catalog of services venues may offer (WiFi, Parking, ...),
// independent of any particular venue.
type Amenity struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Name string    `gorm:"uniqueIndex;not null"`
	Icon string    `gorm:"default:'✓'"`
}

func (a *Amenity) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// VenueAmenity links a venue to an amenity. A pair may occur at most once.
type VenueAmenity struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	VenueID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_venue_amenity,priority:1"`
	AmenityID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_venue_amenity,priority:2"`

	Amenity Amenity `gorm:"constraint:OnDelete:CASCADE"`
}

func (va *VenueAmenity) BeforeCreate(tx *gorm.DB) (err error) {
	if va.ID == uuid.Nil {
		va.ID = uuid.New()
	}
	return
}
