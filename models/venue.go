package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Price tiers, cheapest to most expensive.
const (
	PriceBudget        = "$"
	PriceModerate      = "$$"
	PriceExpensive     = "$$$"
	PriceVeryExpensive = "$$$$"
)

var ErrCoordinatesOutOfRange = errors.New("latitude must be within [-90,90] and longitude within [-180,180]")

type Venue struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	CategoryID uuid.UUID `gorm:"type:uuid;index;not null"`
	Category   Category

	Name        string `gorm:"not null"`
	Description string

	City      string `gorm:"index;not null"`
	Area      string // neighborhood/district, optional
	Address   string
	Latitude  float64 `gorm:"type:numeric(9,6)"`
	Longitude float64 `gorm:"type:numeric(9,6)"`

	PriceRange  string  `gorm:"type:varchar(5);default:'$$'"`
	Rating      float64 `gorm:"type:numeric(3,2);default:0.0"`
	PhoneNumber string
	Website     string

	OpeningHours JSONB `gorm:"type:jsonb;default:'{}'"`

	IsActive  bool `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Images    []VenueImage   `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
	Amenities []VenueAmenity `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
}

func (v *Venue) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return
}

// Coordinates are validated on every write; the original data source
// occasionally emits garbage positions for unmapped ways.
func (v *Venue) BeforeSave(tx *gorm.DB) error {
	if v.Latitude < -90 || v.Latitude > 90 || v.Longitude < -180 || v.Longitude > 180 {
		return ErrCoordinatesOutOfRange
	}
	return nil
}

// VenueImage is one of possibly many images attached to a venue. Display
// order is primary-first, then most recent upload first.
type VenueImage struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	VenueID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Image      string    `gorm:"not null"` // URL or path under the media root
	IsPrimary  bool      `gorm:"default:false"`
	Caption    string
	UploadedAt time.Time `gorm:"autoCreateTime"`
}

func (i *VenueImage) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
