package integration

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapLink(t *testing.T) {
	useCase := NewIntegrationUseCase()

	link := useCase.MapLink("São Paulo & Rio")

	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=S%C3%A3o+Paulo+%26+Rio", link.MapsURL)

	parsed, err := url.Parse(link.MapsURL)
	require.NoError(t, err)
	assert.Equal(t, "São Paulo & Rio", parsed.Query().Get("query"))
}

func TestVideoLink(t *testing.T) {
	useCase := NewIntegrationUseCase()

	link := useCase.VideoLink("Paris")

	assert.Equal(t, "https://www.youtube.com/results?search_query=Paris+travel+guide", link.YoutubeURL)
}

func TestLinks_EmptyLocation(t *testing.T) {
	useCase := NewIntegrationUseCase()

	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=", useCase.MapLink("  ").MapsURL)
	assert.Equal(t, "https://www.youtube.com/results?search_query=", useCase.VideoLink("").YoutubeURL)
}
