package weather

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-query-api/internal/domain/apperror"
	"weather-query-api/internal/domain/gateway/gatewaytest"
	"weather-query-api/internal/domain/model"
	"weather-query-api/internal/domain/model/external"
)

func newFakeGateway() *gatewaytest.FakeWeatherGateway {
	return &gatewaytest.FakeWeatherGateway{
		Locations: map[string]external.Location{
			"Paris": {Name: "Paris", Country: "France", Latitude: 48.85, Longitude: 2.35},
		},
		Forecast: external.Forecast{"current": map[string]any{"temperature_2m": 4.5}},
	}
}

func TestCurrentByLocation(t *testing.T) {
	gateway := newFakeGateway()
	useCase := NewWeatherUseCase(gateway)

	response, err := useCase.CurrentByLocation(context.Background(), "  Paris ")

	require.NoError(t, err)
	location, ok := response.Location.(*external.Location)
	require.True(t, ok)
	assert.Equal(t, "France", location.Country)
	assert.Equal(t, gateway.Forecast, response.Weather)
	assert.Empty(t, gateway.LastStartDate)
	assert.Empty(t, gateway.LastEndDate)
}

func TestCurrentByLocation_EmptyNameFailsWithoutCalls(t *testing.T) {
	gateway := newFakeGateway()
	useCase := NewWeatherUseCase(gateway)

	_, err := useCase.CurrentByLocation(context.Background(), "   ")

	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.Zero(t, gateway.Calls())
}

func TestCurrentByLocation_UnknownLocation(t *testing.T) {
	gateway := newFakeGateway()
	useCase := NewWeatherUseCase(gateway)

	_, err := useCase.CurrentByLocation(context.Background(), "Atlantis")

	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.Zero(t, gateway.WeatherCalls)
}

func TestCurrentByCoordinates(t *testing.T) {
	gateway := newFakeGateway()
	useCase := NewWeatherUseCase(gateway)

	response, err := useCase.CurrentByCoordinates(context.Background(), 10.5, -20.25)

	require.NoError(t, err)
	assert.Equal(t, model.Coordinates{Latitude: 10.5, Longitude: -20.25}, response.Location)
	assert.Zero(t, gateway.GeocodeCalls)
}

func TestCurrentByCoordinates_ProviderFailure(t *testing.T) {
	gateway := newFakeGateway()
	gateway.WeatherErr = apperror.Provider("Weather provider failed", errors.New("timeout"))
	useCase := NewWeatherUseCase(gateway)

	_, err := useCase.CurrentByCoordinates(context.Background(), 1, 2)

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindProvider, appErr.Kind)
	assert.Equal(t, "Weather provider failed", appErr.Message)
}

func TestCurrentByLocation_GeocodingFailureUsesWeatherMessage(t *testing.T) {
	gateway := newFakeGateway()
	gateway.GeocodeErr = apperror.Provider("External API error", errors.New("503"))
	useCase := NewWeatherUseCase(gateway)

	_, err := useCase.CurrentByLocation(context.Background(), "Paris")

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Weather provider failed", appErr.Message)
	assert.ErrorContains(t, err, "503")
}
