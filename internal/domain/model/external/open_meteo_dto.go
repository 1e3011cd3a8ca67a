package external

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// GeocodingResponse represents the response from the Open-Meteo geocoding search
type GeocodingResponse struct {
	Results []GeocodingResult `json:"results"`
}

// GeocodingResult represents a single ranked candidate
type GeocodingResult struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// Location is the resolved place handed back to callers
type Location struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// APIErrorResponse represents error responses from Open-Meteo
type APIErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// Forecast is the provider payload, passed through opaquely. Numbers keep their literal text.
type Forecast map[string]any

// DecodeForecast decodes a raw forecast body preserving number literals.
func DecodeForecast(raw []byte) (Forecast, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var forecast Forecast
	if err := decoder.Decode(&forecast); err != nil {
		return nil, err
	}
	return forecast, nil
}

// CurrentValue returns the textual value of a current-conditions field.
func (f Forecast) CurrentValue(key string) (string, bool) {
	current, ok := f["current"].(map[string]any)
	if !ok {
		return "", false
	}

	switch value := current[key].(type) {
	case json.Number:
		return value.String(), true
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	case string:
		return value, value != ""
	default:
		return "", false
	}
}
