package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "weather-query-api/docs"
	"weather-query-api/internal/application/middleware"
	"weather-query-api/internal/application/validator"
	"weather-query-api/pkg/log"
	"weather-query-api/pkg/msg"
)

type Options struct {
	ContextPath    string
	FrontendPath   string
	AllowedOrigins []string
	// Metrics is mounted at <context-path>/metrics when set
	Metrics http.Handler
}

// Compose builds the server in a fixed order: API routes from register, the API 404
// fallback, then the static frontend as the last catch-all. API paths always win.
func Compose(options Options, register func(api *echo.Group)) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = errorHandler

	e.Use(echomw.Recover())
	middleware.SetupRequestID(e)
	middleware.SetupCORS(e, options.AllowedOrigins)
	middleware.SetupRequestLogger(e)

	api := e.Group(options.ContextPath)
	register(api)

	if options.Metrics != nil {
		api.GET("/metrics", echo.WrapHandler(options.Metrics))
	}
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	// without a context path the frontend owns every unmatched path
	if options.ContextPath != "" {
		api.Any("", routeNotFound)
		api.Any("/*", routeNotFound)
	}

	if options.FrontendPath != "" {
		e.Static("/", options.FrontendPath)
	}
	return e
}

func routeNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("error.route-not-found")})
}

// errorHandler renders framework errors with the same body shape as the controllers
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := msg.GetMessage("error.internal")

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if code < http.StatusInternalServerError {
			message = fmt.Sprint(httpErr.Message)
		}
	}
	if code >= http.StatusInternalServerError {
		log.Errorf("%s %s failed: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, map[string]string{"error": message})
	}
	if err != nil {
		log.Errorf("Fail to write error response: %v", err)
	}
}
