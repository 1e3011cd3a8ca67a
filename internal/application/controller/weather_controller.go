package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-query-api/internal/domain/apperror"
	"weather-query-api/internal/domain/usecase/weather"
	"weather-query-api/pkg/msg"
	"weather-query-api/pkg/util/numberutils"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather/current", controller.CurrentByLocation)
	controller.api.GET("/weather/current-by-coords", controller.CurrentByCoordinates)
}

// CurrentByLocation godoc
// @Summary Current weather for a place name
// @Description Geocodes the location and returns today's weather from the provider
// @Tags weather
// @Produce json
// @Param location query string true "Free-text place name"
// @Success 200 {object} model.CurrentWeatherResponse
// @Failure 400 {object} map[string]string "Missing location"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 502 {object} map[string]string "Provider failure"
// @Router /weather/current [get]
func (controller *WeatherController) CurrentByLocation(c echo.Context) error {
	response, err := controller.useCase.CurrentByLocation(c.Request().Context(), c.QueryParam("location"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// CurrentByCoordinates godoc
// @Summary Current weather for coordinates
// @Description Returns today's weather for a latitude/longitude pair without geocoding
// @Tags weather
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} model.CurrentWeatherResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 502 {object} map[string]string "Provider failure"
// @Router /weather/current-by-coords [get]
func (controller *WeatherController) CurrentByCoordinates(c echo.Context) error {
	latitude, latErr := numberutils.ToFloat64WithError(c.QueryParam("lat"))
	longitude, lonErr := numberutils.ToFloat64WithError(c.QueryParam("lon"))
	if latErr != nil || lonErr != nil {
		return respondError(c, apperror.Validation(msg.GetMessage("weather.error.invalid-coordinates")))
	}

	response, err := controller.useCase.CurrentByCoordinates(c.Request().Context(), latitude, longitude)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, response)
}
