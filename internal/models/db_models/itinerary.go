package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Itinerary struct {
	BaseModel
	UserID        uuid.UUID `gorm:"type:uuid;index;not null"`
	From          string    `gorm:"column:origin;not null"`
	Destination   string    `gorm:"not null"`
	Budget        string    `gorm:"not null"`
	Interests     string    `gorm:"not null"`
	Days          int       `gorm:"not null"`
	People        int       `gorm:"not null"`
	StartDate     time.Time `gorm:"type:date;not null"`
	EndDate       time.Time `gorm:"type:date;not null"`
	ItineraryText string    `gorm:"type:text;not null"`

	Weather []ItineraryWeather `gorm:"foreignKey:ItineraryID;constraint:OnDelete:CASCADE"`
}

// ItineraryWeather is one aligned forecast day stored with an itinerary.
// Position keeps the order the forecast was produced in.
type ItineraryWeather struct {
	ID          uint      `gorm:"primaryKey"`
	ItineraryID uuid.UUID `gorm:"type:uuid;index;not null"`
	Position    int       `gorm:"not null"`
	Date        time.Time `gorm:"type:date;not null"`
	Temperature int
	Description string
	Icon        string `gorm:"size:16"`
}
