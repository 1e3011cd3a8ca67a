package api

import (
	"context"

	"weather-query-api/internal/domain/model/external"
)

// WeatherGateway defines the calls made to the geocoding and forecast providers
type WeatherGateway interface {
	// Geocode resolves a free-text place name to its best match.
	// Fails with a not found error when the provider has no candidate.
	Geocode(ctx context.Context, name string) (*external.Location, error)

	// FetchWeather gets current and daily weather for a coordinate pair.
	// startDate and endDate are YYYY-MM-DD; empty values default to today.
	FetchWeather(ctx context.Context, latitude, longitude float64, startDate, endDate string) (external.Forecast, error)
}
