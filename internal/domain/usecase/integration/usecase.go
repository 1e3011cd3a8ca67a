package integration

import "weather-query-api/internal/domain/model"

// UseCase builds third-party search links. No network call is made.
type UseCase interface {
	MapLink(location string) model.MapLinkResponse
	VideoLink(location string) model.VideoLinkResponse
}
