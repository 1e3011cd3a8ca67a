package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"weather-query-api/internal/domain/entity"
	"weather-query-api/internal/domain/model"
)

type GormQueryGateway struct {
	DB *gorm.DB
}

var _ QueryGateway = (*GormQueryGateway)(nil)

func NewGormQueryGateway(db *gorm.DB) *GormQueryGateway {
	return &GormQueryGateway{DB: db}
}

func (gateway *GormQueryGateway) FindAll(ctx context.Context, order model.SortOrder) ([]entity.WeatherQuery, error) {
	direction := "id DESC"
	if order == model.SortAsc {
		direction = "id ASC"
	}

	queries := make([]entity.WeatherQuery, 0)
	if err := gateway.DB.WithContext(ctx).Order(direction).Find(&queries).Error; err != nil {
		return nil, err
	}
	return queries, nil
}

func (gateway *GormQueryGateway) FindByID(ctx context.Context, id int64) (*entity.WeatherQuery, error) {
	var query entity.WeatherQuery
	err := gateway.DB.WithContext(ctx).First(&query, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &query, nil
}

func (gateway *GormQueryGateway) Create(ctx context.Context, query *entity.WeatherQuery) error {
	return gateway.DB.WithContext(ctx).Create(query).Error
}

func (gateway *GormQueryGateway) Update(ctx context.Context, query *entity.WeatherQuery) error {
	return gateway.DB.WithContext(ctx).
		Model(&entity.WeatherQuery{}).
		Where("id = ?", query.ID).
		Select("location", "latitude", "longitude", "start_date", "end_date", "summary").
		Updates(map[string]any{
			"location":   query.Location,
			"latitude":   query.Latitude,
			"longitude":  query.Longitude,
			"start_date": query.StartDate,
			"end_date":   query.EndDate,
			"summary":    query.Summary,
		}).Error
}

func (gateway *GormQueryGateway) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result := gateway.DB.WithContext(ctx).Delete(&entity.WeatherQuery{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
