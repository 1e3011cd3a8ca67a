package db

import (
	"context"

	"weather-query-api/internal/domain/entity"
	"weather-query-api/internal/domain/model"
)

// QueryGateway persists WeatherQuery records
type QueryGateway interface {
	FindAll(ctx context.Context, order model.SortOrder) ([]entity.WeatherQuery, error)
	// FindByID returns nil, nil when no record has the id
	FindByID(ctx context.Context, id int64) (*entity.WeatherQuery, error)
	Create(ctx context.Context, query *entity.WeatherQuery) error
	// Update overwrites the mutable columns of an existing record, never created_at
	Update(ctx context.Context, query *entity.WeatherQuery) error
	// DeleteByID reports whether a row was removed
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
