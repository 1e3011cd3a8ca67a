package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-query-api/internal/domain/apperror"
	pkghttp "weather-query-api/pkg/http"
)

const (
	geocodingURL = "https://geocoding.test/v1/search"
	forecastURL  = "https://forecast.test/v1/forecast"
)

func newTestGateway(t *testing.T) (*weatherGatewayImpl, *httpmock.MockTransport) {
	t.Helper()

	transport := httpmock.NewMockTransport()
	gateway := NewWeatherGateway(WeatherGatewayConfig{
		GeocodingBaseURL: "https://geocoding.test",
		GeocodingOptions: pkghttp.ClientOptions{Transport: transport, ReadTimeout: 15 * time.Second},
		ForecastBaseURL:  "https://forecast.test",
		ForecastOptions:  pkghttp.ClientOptions{Transport: transport, ReadTimeout: 20 * time.Second},
	}).(*weatherGatewayImpl)
	gateway.now = func() time.Time { return time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC) }
	return gateway, transport
}

func TestGeocode_ReturnsFirstResult(t *testing.T) {
	gateway, transport := newTestGateway(t)

	transport.RegisterResponder(http.MethodGet, geocodingURL,
		func(req *http.Request) (*http.Response, error) {
			query := req.URL.Query()
			assert.Equal(t, "Lisbon", query.Get("name"))
			assert.Equal(t, "1", query.Get("count"))
			assert.Equal(t, "en", query.Get("language"))
			assert.Equal(t, "json", query.Get("format"))
			return httpmock.NewStringResponse(http.StatusOK,
				`{"results":[{"id":1,"name":"Lisbon","country":"Portugal","latitude":38.72,"longitude":-9.13},
				{"id":2,"name":"Lisbon","country":"United States","latitude":44.0,"longitude":-70.1}]}`), nil
		})

	location, err := gateway.Geocode(context.Background(), "Lisbon")

	require.NoError(t, err)
	assert.Equal(t, "Lisbon", location.Name)
	assert.Equal(t, "Portugal", location.Country)
	assert.InDelta(t, 38.72, location.Latitude, 1e-9)
	assert.InDelta(t, -9.13, location.Longitude, 1e-9)
}

func TestGeocode_NoResultsIsNotFound(t *testing.T) {
	gateway, transport := newTestGateway(t)

	transport.RegisterResponder(http.MethodGet, geocodingURL,
		httpmock.NewStringResponder(http.StatusOK, `{"generationtime_ms":0.5}`))

	_, err := gateway.Geocode(context.Background(), "Nowhereville")

	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.Equal(t, "Location not found", err.Error())
}

func TestGeocode_ProviderFailures(t *testing.T) {
	tests := []struct {
		name      string
		responder httpmock.Responder
	}{
		{"error status", httpmock.NewStringResponder(http.StatusInternalServerError, `{"error":true,"reason":"boom"}`)},
		{"malformed body", httpmock.NewStringResponder(http.StatusOK, `{not json`)},
		{"network error", httpmock.NewErrorResponder(errors.New("connection reset"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway, transport := newTestGateway(t)
			transport.RegisterResponder(http.MethodGet, geocodingURL, tt.responder)

			_, err := gateway.Geocode(context.Background(), "Lisbon")

			require.Error(t, err)
			assert.True(t, apperror.Is(err, apperror.KindProvider))

			var appErr *apperror.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "External API error", appErr.Message)
		})
	}
}

func TestFetchWeather_SendsVariablesAndDates(t *testing.T) {
	gateway, transport := newTestGateway(t)

	transport.RegisterResponder(http.MethodGet, forecastURL,
		func(req *http.Request) (*http.Response, error) {
			query := req.URL.Query()
			assert.Equal(t, "38.72", query.Get("latitude"))
			assert.Equal(t, "-9.13", query.Get("longitude"))
			assert.Equal(t, currentVariables, query.Get("current"))
			assert.Equal(t, dailyVariables, query.Get("daily"))
			assert.Equal(t, "auto", query.Get("timezone"))
			assert.Equal(t, "2024-01-01", query.Get("start_date"))
			assert.Equal(t, "2024-01-03", query.Get("end_date"))
			return httpmock.NewStringResponse(http.StatusOK,
				`{"current":{"temperature_2m":12.0,"wind_speed_10m":5.4},"daily":{"time":["2024-01-01"]}}`), nil
		})

	forecast, err := gateway.FetchWeather(context.Background(), 38.72, -9.13, "2024-01-01", "2024-01-03")

	require.NoError(t, err)
	temperature, ok := forecast.CurrentValue("temperature_2m")
	assert.True(t, ok)
	assert.Equal(t, "12.0", temperature)
	assert.Contains(t, forecast, "daily")
}

func TestFetchWeather_DefaultsDatesToToday(t *testing.T) {
	gateway, transport := newTestGateway(t)

	transport.RegisterResponder(http.MethodGet, forecastURL,
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "2024-03-09", req.URL.Query().Get("start_date"))
			assert.Equal(t, "2024-03-09", req.URL.Query().Get("end_date"))
			return httpmock.NewStringResponse(http.StatusOK, `{"current":{}}`), nil
		})

	_, err := gateway.FetchWeather(context.Background(), 1, 2, "", "")

	require.NoError(t, err)
	assert.Equal(t, 1, transport.GetTotalCallCount())
}

func TestFetchWeather_ProviderFailures(t *testing.T) {
	tests := []struct {
		name      string
		responder httpmock.Responder
	}{
		{"bad request", httpmock.NewStringResponder(http.StatusBadRequest, `{"error":true,"reason":"Latitude must be in range"}`)},
		{"malformed body", httpmock.NewStringResponder(http.StatusOK, `[1,2`)},
		{"null body", httpmock.NewStringResponder(http.StatusOK, `null`)},
		{"network error", httpmock.NewErrorResponder(errors.New("timeout"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway, transport := newTestGateway(t)
			transport.RegisterResponder(http.MethodGet, forecastURL, tt.responder)

			_, err := gateway.FetchWeather(context.Background(), 1, 2, "2024-01-01", "2024-01-01")

			require.Error(t, err)
			var appErr *apperror.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperror.KindProvider, appErr.Kind)
			assert.Equal(t, "Weather provider failed", appErr.Message)
		})
	}
}

func TestFetchWeather_IgnoresCallerCancellation(t *testing.T) {
	gateway, transport := newTestGateway(t)

	transport.RegisterResponder(http.MethodGet, forecastURL,
		func(req *http.Request) (*http.Response, error) {
			require.NoError(t, req.Context().Err())
			return httpmock.NewStringResponse(http.StatusOK, `{"current":{}}`), nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.FetchWeather(ctx, 1, 2, "2024-01-01", "2024-01-01")

	require.NoError(t, err)
}
