package configs

import (
	"strings"
	"time"

	"weather-query-api/pkg/resource"
)

type AppConfig struct {
	ApplicationName string
	Port            int
	ContextPath     string
	AllowedOrigins  []string
	LogLevel        string
	FrontendPath    string
	DB              DBConfig
	Geocoding       ProviderConfig
	Forecast        ProviderConfig
}

type DBConfig struct {
	Driver       string
	DSN          string
	Host         string
	Port         string
	Username     string
	Password     string
	Database     string
	Schema       string
	MaxOpenConns int
	MaxIdleConns int
}

type ProviderConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Load builds the typed configuration from the loaded properties, filling defaults for absent keys.
func Load() *AppConfig {
	setDefaults()

	return &AppConfig{
		ApplicationName: resource.GetString("app.name"),
		Port:            resource.GetInt("app.server.port"),
		ContextPath:     normalizeContextPath(resource.GetString("app.server.context-path")),
		AllowedOrigins:  splitOrigins(resource.GetStringSlice("app.server.cors.allowed-origins")),
		LogLevel:        resource.GetString("app.log.level"),
		FrontendPath:    resource.GetString("app.frontend.path"),
		DB: DBConfig{
			Driver:       strings.ToLower(resource.GetString("app.db.driver")),
			DSN:          resource.GetString("app.db.dsn"),
			Host:         resource.GetString("app.db.host"),
			Port:         resource.GetString("app.db.port"),
			Username:     resource.GetString("app.db.username"),
			Password:     resource.GetString("app.db.password"),
			Database:     resource.GetString("app.db.database"),
			Schema:       resource.GetString("app.db.schema"),
			MaxOpenConns: resource.GetInt("app.db.max-open-conns"),
			MaxIdleConns: resource.GetInt("app.db.max-idle-conns"),
		},
		Geocoding: ProviderConfig{
			BaseURL: resource.GetString("app.provider.geocoding.base-url"),
			Timeout: resource.GetDuration("app.provider.geocoding.timeout"),
		},
		Forecast: ProviderConfig{
			BaseURL: resource.GetString("app.provider.forecast.base-url"),
			Timeout: resource.GetDuration("app.provider.forecast.timeout"),
		},
	}
}

func setDefaults() {
	resource.SetDefault("app.name", "weather-query-api")
	resource.SetDefault("app.server.port", 8000)
	resource.SetDefault("app.server.context-path", "/api")
	resource.SetDefault("app.server.cors.allowed-origins", []string{"*"})
	resource.SetDefault("app.log.level", "info")
	resource.SetDefault("app.frontend.path", "frontend")
	resource.SetDefault("app.db.driver", "postgres")
	resource.SetDefault("app.db.max-open-conns", 10)
	resource.SetDefault("app.db.max-idle-conns", 5)
	resource.SetDefault("app.provider.geocoding.base-url", "https://geocoding-api.open-meteo.com")
	resource.SetDefault("app.provider.geocoding.timeout", 15*time.Second)
	resource.SetDefault("app.provider.forecast.base-url", "https://api.open-meteo.com")
	resource.SetDefault("app.provider.forecast.timeout", 20*time.Second)
}

func normalizeContextPath(path string) string {
	path = "/" + strings.Trim(strings.TrimSpace(path), "/")
	if path == "/" {
		return ""
	}
	return path
}

// splitOrigins accepts both a YAML list and a comma separated value from the environment
func splitOrigins(values []string) []string {
	origins := make([]string, 0, len(values))
	for _, value := range values {
		for _, origin := range strings.Split(value, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
