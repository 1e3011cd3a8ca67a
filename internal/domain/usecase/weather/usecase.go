package weather

import (
	"context"

	"weather-query-api/internal/domain/model"
)

type UseCase interface {
	// CurrentByLocation geocodes the name and fetches today's weather for it
	CurrentByLocation(ctx context.Context, location string) (*model.CurrentWeatherResponse, error)

	// CurrentByCoordinates fetches today's weather without geocoding
	CurrentByCoordinates(ctx context.Context, latitude, longitude float64) (*model.CurrentWeatherResponse, error)
}
