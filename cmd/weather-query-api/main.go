package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"weather-query-api/configs"
	"weather-query-api/internal/application/controller"
	"weather-query-api/internal/application/router"
	"weather-query-api/internal/domain/gateway/api"
	"weather-query-api/internal/domain/gateway/db"
	"weather-query-api/internal/domain/usecase/export"
	"weather-query-api/internal/domain/usecase/health"
	"weather-query-api/internal/domain/usecase/integration"
	"weather-query-api/internal/domain/usecase/query"
	"weather-query-api/internal/domain/usecase/weather"
	"weather-query-api/internal/infra/database/gorm"
	"weather-query-api/internal/infra/metrics"
	pkghttp "weather-query-api/pkg/http"
	"weather-query-api/pkg/log"
	"weather-query-api/pkg/msg"
	"weather-query-api/pkg/resource"
)

func main() {
	defer log.Sync()

	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("Fail to load .env: %v", err)
	}

	if err := resource.Init(resource.Path()); err != nil {
		log.Fatalf("Fail to load properties: %v", err)
	}
	if path, ok := os.LookupEnv("MESSAGES_FILE_PATH"); ok && path != "" {
		if err := msg.Init(path); err != nil {
			log.Fatalf("Fail to load messages: %v", err)
		}
	}

	config := configs.Load()
	log.SetLevel(config.LogLevel)
	log.Info(msg.GetMessage("app.start", config.ApplicationName))

	// Init infra
	database, err := gorm.Open(config.DB)
	if err != nil {
		log.Fatalf("Fail to open database: %v", err)
	}
	log.Info(msg.GetMessage("app.db-connected", database.Dialector.Name()))

	providerMetrics, err := metrics.NewProviderMetrics(prometheus.NewRegistry())
	if err != nil {
		log.Fatalf("Fail to register metrics: %v", err)
	}

	// Init Gateways
	weatherGateway := api.NewWeatherGateway(api.WeatherGatewayConfig{
		GeocodingBaseURL: config.Geocoding.BaseURL,
		GeocodingOptions: pkghttp.ClientOptions{ReadTimeout: config.Geocoding.Timeout, Logger: providerMetrics},
		ForecastBaseURL:  config.Forecast.BaseURL,
		ForecastOptions:  pkghttp.ClientOptions{ReadTimeout: config.Forecast.Timeout, Logger: providerMetrics},
	})
	queryGateway := db.NewGormQueryGateway(database)
	healthGateway := db.NewGormHealthDBGateway(database)

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(healthGateway)
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway)
	queryUseCase := query.NewQueryUseCase(weatherGateway, queryGateway)
	exportUseCase := export.NewExportUseCase(queryGateway)
	integrationUseCase := integration.NewIntegrationUseCase()

	e := router.Compose(router.Options{
		ContextPath:    config.ContextPath,
		FrontendPath:   config.FrontendPath,
		AllowedOrigins: config.AllowedOrigins,
		Metrics:        providerMetrics.Handler(),
	}, func(group *echo.Group) {
		controller.NewHealthController(group, healthUseCase).InitHealthRoutes()
		controller.NewWeatherController(group, weatherUseCase).InitWeatherRoutes()
		controller.NewQueryController(group, queryUseCase).InitQueryRoutes()
		controller.NewExportController(group, exportUseCase).InitExportRoutes()
		controller.NewIntegrationController(group, integrationUseCase).InitIntegrationRoutes()
	})

	// Start Routes
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info(msg.GetMessage("app.started", config.ApplicationName, config.Port))
		if err := e.Start(fmt.Sprintf(":%d", config.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Fail to start server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Fail to stop server: %v", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info(msg.GetMessage("app.stopped", config.ApplicationName))
}
