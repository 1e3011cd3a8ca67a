package integration

import (
	"net/url"
	"strings"

	"weather-query-api/internal/domain/model"
)

const (
	mapsSearchURL    = "https://www.google.com/maps/search/"
	youtubeSearchURL = "https://www.youtube.com/results"
	videoQuerySuffix = " travel guide"
)

type integrationUseCase struct{}

func NewIntegrationUseCase() UseCase {
	return &integrationUseCase{}
}

func (uc *integrationUseCase) MapLink(location string) model.MapLinkResponse {
	query := url.Values{}
	query.Set("api", "1")
	query.Set("query", strings.TrimSpace(location))

	return model.MapLinkResponse{MapsURL: mapsSearchURL + "?" + query.Encode()}
}

func (uc *integrationUseCase) VideoLink(location string) model.VideoLinkResponse {
	search := strings.TrimSpace(location)
	if search != "" {
		search += videoQuerySuffix
	}

	query := url.Values{}
	query.Set("search_query", search)

	return model.VideoLinkResponse{YoutubeURL: youtubeSearchURL + "?" + query.Encode()}
}
