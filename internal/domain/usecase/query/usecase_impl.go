package query

import (
	"context"
	"fmt"
	"strings"

	"weather-query-api/internal/domain/apperror"
	"weather-query-api/internal/domain/entity"
	"weather-query-api/internal/domain/gateway/api"
	"weather-query-api/internal/domain/gateway/db"
	"weather-query-api/internal/domain/model"
	"weather-query-api/pkg/log"
	"weather-query-api/pkg/msg"
)

type queryUseCase struct {
	apiGateway api.WeatherGateway
	dbGateway  db.QueryGateway
}

func NewQueryUseCase(apiGateway api.WeatherGateway, dbGateway db.QueryGateway) UseCase {
	return &queryUseCase{
		apiGateway: apiGateway,
		dbGateway:  dbGateway,
	}
}

func (uc *queryUseCase) FindAll(ctx context.Context) ([]entity.WeatherQuery, error) {
	queries, err := uc.dbGateway.FindAll(ctx, model.SortDesc)
	if err != nil {
		return nil, fmt.Errorf("failed to find queries: %w", err)
	}
	return queries, nil
}

func (uc *queryUseCase) FindByID(ctx context.Context, id int64) (*entity.WeatherQuery, error) {
	query, err := uc.dbGateway.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find query %d: %w", id, err)
	}
	if query == nil {
		return nil, apperror.NotFound(msg.GetMessage("query.error.not-found"))
	}
	return query, nil
}

func (uc *queryUseCase) Create(ctx context.Context, dto model.CreateQueryDTO) (*entity.WeatherQuery, error) {
	query := &entity.WeatherQuery{
		Location:  strings.TrimSpace(dto.Location),
		StartDate: strings.TrimSpace(dto.StartDate),
		EndDate:   strings.TrimSpace(dto.EndDate),
	}

	if err := uc.resolve(ctx, query); err != nil {
		return nil, err
	}

	if err := uc.dbGateway.Create(ctx, query); err != nil {
		return nil, fmt.Errorf("failed to save query: %w", err)
	}

	log.Info(msg.GetMessage("query.created", query.ID, query.Location))
	return query, nil
}

func (uc *queryUseCase) Update(ctx context.Context, id int64, dto model.UpdateQueryDTO) (*entity.WeatherQuery, error) {
	query, err := uc.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if query.Location, err = mergeField("location", dto.Location, query.Location); err != nil {
		return nil, err
	}
	if query.StartDate, err = mergeField("start_date", dto.StartDate, query.StartDate); err != nil {
		return nil, err
	}
	if query.EndDate, err = mergeField("end_date", dto.EndDate, query.EndDate); err != nil {
		return nil, err
	}

	if err = uc.resolve(ctx, query); err != nil {
		return nil, err
	}

	if err = uc.dbGateway.Update(ctx, query); err != nil {
		return nil, fmt.Errorf("failed to update query %d: %w", id, err)
	}

	log.Info(msg.GetMessage("query.updated", query.ID, query.Location))
	return query, nil
}

func (uc *queryUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.dbGateway.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete query %d: %w", id, err)
	}
	if !deleted {
		return apperror.NotFound(msg.GetMessage("query.error.not-found"))
	}

	log.Info(msg.GetMessage("query.deleted", id))
	return nil
}

// resolve validates the record input, then fills coordinates and summary from the providers.
// Validation runs before any outbound call.
func (uc *queryUseCase) resolve(ctx context.Context, query *entity.WeatherQuery) error {
	if err := validateLocation(query.Location); err != nil {
		return err
	}
	if err := validateDateRange(query.StartDate, query.EndDate); err != nil {
		return err
	}

	place, err := uc.apiGateway.Geocode(ctx, query.Location)
	if err != nil {
		return providerFailure(err)
	}

	forecast, err := uc.apiGateway.FetchWeather(ctx, place.Latitude, place.Longitude, query.StartDate, query.EndDate)
	if err != nil {
		return providerFailure(err)
	}

	query.Latitude = place.Latitude
	query.Longitude = place.Longitude
	query.Summary = BuildSummary(forecast)
	return nil
}

// providerFailure reports any provider error of a saved query under one message
func providerFailure(err error) error {
	if apperror.Is(err, apperror.KindProvider) {
		return apperror.Provider(msg.GetMessage("provider.error.external"), err)
	}
	return err
}
