package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-query-api/internal/domain/usecase/export"
)

type ExportController struct {
	api     *echo.Group
	useCase export.UseCase
}

func NewExportController(api *echo.Group, useCase export.UseCase) *ExportController {
	return &ExportController{api: api, useCase: useCase}
}

// InitExportRoutes initializes export routes
func (controller *ExportController) InitExportRoutes() {
	controller.api.GET("/export/:format", controller.Export)
}

// Export godoc
// @Summary Export saved weather queries
// @Description All records in ascending id order as json, csv or md
// @Tags export
// @Produce json
// @Produce text/csv
// @Produce text/markdown
// @Param format path string true "Export format" Enums(json, csv, md)
// @Success 200 {object} model.ExportResponse
// @Failure 400 {object} map[string]string "Unsupported format"
// @Router /export/{format} [get]
func (controller *ExportController) Export(c echo.Context) error {
	document, err := controller.useCase.Export(c.Request().Context(), c.Param("format"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Blob(http.StatusOK, document.ContentType, document.Body)
}
