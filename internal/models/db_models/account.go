package db_models

type Account struct {
	BaseModel
	Username     string   `gorm:"size:64;uniqueIndex;not null"`
	Email        string   `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	Phone        string   `gorm:"size:32"`
	Address      string
	Preferences  []string `gorm:"serializer:json"`

	Itineraries []Itinerary `gorm:"foreignKey:UserID"`
}
