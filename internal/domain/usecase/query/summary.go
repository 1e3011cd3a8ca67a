package query

import (
	"fmt"

	"weather-query-api/internal/domain/model/external"
)

const notAvailable = "n/a"

// BuildSummary renders the current temperature and wind speed, keeping the provider's number text.
func BuildSummary(forecast external.Forecast) string {
	return fmt.Sprintf("Temp: %s°C, Wind: %s km/h",
		currentOrNotAvailable(forecast, "temperature_2m"),
		currentOrNotAvailable(forecast, "wind_speed_10m"))
}

func currentOrNotAvailable(forecast external.Forecast, key string) string {
	if value, ok := forecast.CurrentValue(key); ok {
		return value
	}
	return notAvailable
}
