package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
	"venuefinder-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Username string    `gorm:"uniqueIndex;not null"`
	Email    string    `gorm:"uniqueIndex;not null"`
	FullName string
	Password string    `gorm:"not null"` // bcrypt hash, set in BeforeCreate

	IsActive  bool `gorm:"default:true"`
	LastLogin *time.Time

	SearchHistory []SearchHistory `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	gorm.Model
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

// Custom JSONB type for venue opening hours
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, &j)
	case string:
		return json.Unmarshal([]byte(v), &j)
	default:
		return errors.New("unsupported type for JSONB scan")
	}
}
