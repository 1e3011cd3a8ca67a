package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-query-api/internal/domain/apperror"
	"weather-query-api/pkg/log"
	"weather-query-api/pkg/msg"
	"weather-query-api/pkg/util/numberutils"
)

// respondError maps a classified failure to its status. Unclassified failures are logged and hidden.
func respondError(c echo.Context, err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperror.KindValidation:
			return c.JSON(http.StatusBadRequest, map[string]string{"error": appErr.Message})
		case apperror.KindNotFound:
			return c.JSON(http.StatusNotFound, map[string]string{"error": appErr.Message})
		case apperror.KindProvider:
			return c.JSON(http.StatusBadGateway, map[string]string{"error": appErr.Message})
		}
	}

	log.Errorf("%s %s failed: %v", c.Request().Method, c.Request().URL.Path, err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": msg.GetMessage("error.internal")})
}

// pathID reads a positive integer id from the path
func pathID(c echo.Context) (int64, error) {
	id, err := numberutils.ToInt64WithError(c.Param("id"))
	if err != nil || !numberutils.IsInt64Positive(id) {
		return 0, apperror.Validation(msg.GetMessage("query.error.invalid-id"))
	}
	return id, nil
}
