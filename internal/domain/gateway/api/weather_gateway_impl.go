package api

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"weather-query-api/internal/domain/apperror"
	"weather-query-api/internal/domain/model/external"
	"weather-query-api/pkg/http"
	"weather-query-api/pkg/log"
	"weather-query-api/pkg/msg"
)

const (
	currentVariables = "temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,wind_speed_10m"
	dailyVariables   = "weather_code,temperature_2m_max,temperature_2m_min,precipitation_probability_max"
	dateLayout       = "2006-01-02"
)

// WeatherGatewayConfig holds one client configuration per provider
type WeatherGatewayConfig struct {
	GeocodingBaseURL string
	GeocodingOptions http.ClientOptions
	ForecastBaseURL  string
	ForecastOptions  http.ClientOptions
}

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	geocodingClient *http.Client
	forecastClient  *http.Client
	now             func() time.Time
}

var _ WeatherGateway = (*weatherGatewayImpl)(nil)

// NewWeatherGateway creates a new instance of WeatherGateway with one HTTP client per provider
func NewWeatherGateway(config WeatherGatewayConfig) WeatherGateway {
	return &weatherGatewayImpl{
		geocodingClient: http.NewHttpClient(config.GeocodingBaseURL, config.GeocodingOptions),
		forecastClient:  http.NewHttpClient(config.ForecastBaseURL, config.ForecastOptions),
		now:             time.Now,
	}
}

// Geocode searches the geocoding provider and keeps the first ranked result
func (w *weatherGatewayImpl) Geocode(ctx context.Context, name string) (*external.Location, error) {
	successResp, errResp, _, err := w.geocodingClient.Request().
		WithContext(context.WithoutCancel(ctx)).
		WithMethod(http.GET).
		WithPath("/v1/search").
		WithQueryParams(map[string]string{
			"name":     name,
			"count":    "1",
			"language": "en",
			"format":   "json",
		}).
		WithSuccessResp(&external.GeocodingResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, providerError("geocoding", "provider.error.external", errResp, err)
	}

	response := successResp.(*external.GeocodingResponse)
	if len(response.Results) == 0 {
		return nil, apperror.NotFound(msg.GetMessage("location.error.not-found"))
	}

	first := response.Results[0]
	return &external.Location{
		Name:      first.Name,
		Country:   first.Country,
		Latitude:  first.Latitude,
		Longitude: first.Longitude,
	}, nil
}

// FetchWeather gets the forecast payload, keeping number literals as sent by the provider
func (w *weatherGatewayImpl) FetchWeather(ctx context.Context, latitude, longitude float64, startDate, endDate string) (external.Forecast, error) {
	today := w.now().Format(dateLayout)
	if startDate == "" {
		startDate = today
	}
	if endDate == "" {
		endDate = today
	}

	successResp, errResp, _, err := w.forecastClient.Request().
		WithContext(context.WithoutCancel(ctx)).
		WithMethod(http.GET).
		WithPath("/v1/forecast").
		WithQueryParams(map[string]string{
			"latitude":   strconv.FormatFloat(latitude, 'f', -1, 64),
			"longitude":  strconv.FormatFloat(longitude, 'f', -1, 64),
			"current":    currentVariables,
			"daily":      dailyVariables,
			"timezone":   "auto",
			"start_date": startDate,
			"end_date":   endDate,
		}).
		WithSuccessResp(&json.RawMessage{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, providerError("forecast", "provider.error.weather", errResp, err)
	}

	forecast, err := external.DecodeForecast(*successResp.(*json.RawMessage))
	if err != nil {
		return nil, providerError("forecast", "provider.error.weather", nil, err)
	}
	if forecast == nil {
		return nil, providerError("forecast", "provider.error.weather", nil, errors.New("empty forecast payload"))
	}
	return forecast, nil
}

// providerError logs the provider cause and hides it behind a generic message
func providerError(provider, messageKey string, errResp any, cause error) error {
	if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr.Reason != "" {
		cause = errors.Join(cause, errors.New(apiErr.Reason))
	}
	log.Error(msg.GetMessage("provider.call-failed", provider, cause.Error()))
	return apperror.Provider(msg.GetMessage(messageKey), cause)
}
