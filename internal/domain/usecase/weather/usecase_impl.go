package weather

import (
	"context"
	"strings"

	"weather-query-api/internal/domain/apperror"
	"weather-query-api/internal/domain/gateway/api"
	"weather-query-api/internal/domain/model"
	"weather-query-api/pkg/msg"
)

type weatherUseCase struct {
	apiGateway api.WeatherGateway
}

func NewWeatherUseCase(apiGateway api.WeatherGateway) UseCase {
	return &weatherUseCase{
		apiGateway: apiGateway,
	}
}

func (uc *weatherUseCase) CurrentByLocation(ctx context.Context, location string) (*model.CurrentWeatherResponse, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, apperror.Validation(msg.GetMessage("location.error.required"))
	}

	place, err := uc.apiGateway.Geocode(ctx, location)
	if err != nil {
		return nil, providerFailure(err)
	}

	forecast, err := uc.apiGateway.FetchWeather(ctx, place.Latitude, place.Longitude, "", "")
	if err != nil {
		return nil, providerFailure(err)
	}

	return &model.CurrentWeatherResponse{
		Location: place,
		Weather:  forecast,
	}, nil
}

func (uc *weatherUseCase) CurrentByCoordinates(ctx context.Context, latitude, longitude float64) (*model.CurrentWeatherResponse, error) {
	forecast, err := uc.apiGateway.FetchWeather(ctx, latitude, longitude, "", "")
	if err != nil {
		return nil, providerFailure(err)
	}

	return &model.CurrentWeatherResponse{
		Location: model.Coordinates{Latitude: latitude, Longitude: longitude},
		Weather:  forecast,
	}, nil
}

// providerFailure reports any provider error of a live lookup under one message
func providerFailure(err error) error {
	if apperror.Is(err, apperror.KindProvider) {
		return apperror.Provider(msg.GetMessage("provider.error.weather"), err)
	}
	return err
}
