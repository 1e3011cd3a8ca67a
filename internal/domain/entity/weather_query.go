package entity

import "time"

// WeatherQuery is one saved lookup. Summary is a snapshot taken at the last create or update.
type WeatherQuery struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Location  string    `json:"location" gorm:"not null;index"`
	Latitude  float64   `json:"latitude" gorm:"not null"`
	Longitude float64   `json:"longitude" gorm:"not null"`
	StartDate string    `json:"start_date" gorm:"not null"`
	EndDate   string    `json:"end_date" gorm:"not null"`
	Summary   string    `json:"summary" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
}

func (WeatherQuery) TableName() string {
	return "weather_queries"
}
