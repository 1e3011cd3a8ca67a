package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-query-api/internal/domain/usecase/integration"
)

type IntegrationController struct {
	api     *echo.Group
	useCase integration.UseCase
}

func NewIntegrationController(api *echo.Group, useCase integration.UseCase) *IntegrationController {
	return &IntegrationController{api: api, useCase: useCase}
}

// InitIntegrationRoutes initializes link builder routes
func (controller *IntegrationController) InitIntegrationRoutes() {
	controller.api.GET("/integrations/maps", controller.MapLink)
	controller.api.GET("/integrations/youtube", controller.VideoLink)
}

// MapLink godoc
// @Summary Google Maps search link
// @Tags integrations
// @Produce json
// @Param location query string false "Place name"
// @Success 200 {object} model.MapLinkResponse
// @Router /integrations/maps [get]
func (controller *IntegrationController) MapLink(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.MapLink(c.QueryParam("location")))
}

// VideoLink godoc
// @Summary YouTube travel guide search link
// @Tags integrations
// @Produce json
// @Param location query string false "Place name"
// @Success 200 {object} model.VideoLinkResponse
// @Router /integrations/youtube [get]
func (controller *IntegrationController) VideoLink(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.VideoLink(c.QueryParam("location")))
}
