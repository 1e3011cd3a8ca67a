package query

import (
	"context"

	"weather-query-api/internal/domain/entity"
	"weather-query-api/internal/domain/model"
)

type UseCase interface {
	// FindAll returns every saved query, newest first
	FindAll(ctx context.Context) ([]entity.WeatherQuery, error)

	// FindByID returns a saved query or a not found error
	FindByID(ctx context.Context, id int64) (*entity.WeatherQuery, error)

	// Create validates the range, geocodes, fetches weather and saves a new record
	Create(ctx context.Context, dto model.CreateQueryDTO) (*entity.WeatherQuery, error)

	// Update merges the supplied fields over the stored record and refreshes coordinates and summary
	Update(ctx context.Context, id int64, dto model.UpdateQueryDTO) (*entity.WeatherQuery, error)

	// Delete removes a saved query permanently
	Delete(ctx context.Context, id int64) error
}
