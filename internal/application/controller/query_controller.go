package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-query-api/internal/domain/apperror"
	"weather-query-api/internal/domain/model"
	"weather-query-api/internal/domain/usecase/query"
	"weather-query-api/pkg/msg"
)

type QueryController struct {
	api     *echo.Group
	useCase query.UseCase
}

func NewQueryController(api *echo.Group, useCase query.UseCase) *QueryController {
	return &QueryController{api: api, useCase: useCase}
}

// InitQueryRoutes initializes saved query routes
func (controller *QueryController) InitQueryRoutes() {
	controller.api.POST("/queries", controller.Create)
	controller.api.GET("/queries", controller.FindAll)
	controller.api.GET("/queries/:id", controller.FindByID)
	controller.api.PUT("/queries/:id", controller.Update)
	controller.api.DELETE("/queries/:id", controller.Delete)
}

// Create godoc
// @Summary Save a weather query
// @Description Validates the date range, geocodes the location, fetches weather for the range and stores the record
// @Tags queries
// @Accept json
// @Produce json
// @Param query body model.CreateQueryDTO true "Location and date range"
// @Success 201 {object} entity.WeatherQuery
// @Failure 400 {object} map[string]string "Invalid body or dates"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 502 {object} map[string]string "Provider failure"
// @Router /queries [post]
func (controller *QueryController) Create(c echo.Context) error {
	var dto model.CreateQueryDTO
	if err := c.Bind(&dto); err != nil {
		return respondError(c, apperror.Validation(msg.GetMessage("error.invalid-body")))
	}
	if err := c.Validate(dto); err != nil {
		return respondError(c, err)
	}

	created, err := controller.useCase.Create(c.Request().Context(), dto)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// FindAll godoc
// @Summary List saved weather queries
// @Description Newest first
// @Tags queries
// @Produce json
// @Success 200 {array} entity.WeatherQuery
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /queries [get]
func (controller *QueryController) FindAll(c echo.Context) error {
	queries, err := controller.useCase.FindAll(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, queries)
}

// FindByID godoc
// @Summary Get a saved weather query
// @Tags queries
// @Produce json
// @Param id path int true "Query id"
// @Success 200 {object} entity.WeatherQuery
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Record not found"
// @Router /queries/{id} [get]
func (controller *QueryController) FindByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	found, err := controller.useCase.FindByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, found)
}

// Update godoc
// @Summary Update a saved weather query
// @Description Omitted fields keep their stored value; coordinates and summary are always refreshed
// @Tags queries
// @Accept json
// @Produce json
// @Param id path int true "Query id"
// @Param query body model.UpdateQueryDTO true "Fields to change"
// @Success 200 {object} entity.WeatherQuery
// @Failure 400 {object} map[string]string "Invalid id, body or dates"
// @Failure 404 {object} map[string]string "Record or location not found"
// @Failure 502 {object} map[string]string "Provider failure"
// @Router /queries/{id} [put]
func (controller *QueryController) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	var dto model.UpdateQueryDTO
	if err = c.Bind(&dto); err != nil {
		return respondError(c, apperror.Validation(msg.GetMessage("error.invalid-body")))
	}

	updated, err := controller.useCase.Update(c.Request().Context(), id, dto)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a saved weather query
// @Tags queries
// @Produce json
// @Param id path int true "Query id"
// @Success 200 {object} model.DeleteQueryResponse
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Record not found"
// @Router /queries/{id} [delete]
func (controller *QueryController) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err = controller.useCase.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, model.DeleteQueryResponse{Deleted: true})
}
