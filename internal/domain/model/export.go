package model

import "time"

// ExportFormat names a supported export serialization.
type ExportFormat string

const (
	ExportJSON     ExportFormat = "json"
	ExportCSV      ExportFormat = "csv"
	ExportMarkdown ExportFormat = "md"
)

type ExportItem struct {
	ID        int64     `json:"id"`
	Location  string    `json:"location"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

type ExportResponse struct {
	Items []ExportItem `json:"items"`
}

// ExportDocument is a rendered export ready to be written to the client.
type ExportDocument struct {
	ContentType string
	Body        []byte
}
