package model

import "weather-query-api/internal/domain/model/external"

type CurrentWeatherResponse struct {
	Location any              `json:"location"`
	Weather  external.Forecast `json:"weather"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type MapLinkResponse struct {
	MapsURL string `json:"maps_url"`
}

type VideoLinkResponse struct {
	YoutubeURL string `json:"youtube_url"`
}
