// Package gatewaytest provides in-memory gateways for use case and controller tests.
package gatewaytest

import (
	"context"
	"sort"
	"sync"
	"time"

	"weather-query-api/internal/domain/apperror"
	"weather-query-api/internal/domain/entity"
	"weather-query-api/internal/domain/gateway/api"
	"weather-query-api/internal/domain/gateway/db"
	"weather-query-api/internal/domain/model"
	"weather-query-api/internal/domain/model/external"
	"weather-query-api/pkg/msg"
)

// FakeWeatherGateway answers from fixed values and counts calls.
type FakeWeatherGateway struct {
	mu sync.Mutex

	Locations  map[string]external.Location
	Forecast   external.Forecast
	GeocodeErr error
	WeatherErr error

	GeocodeCalls  int
	WeatherCalls  int
	LastStartDate string
	LastEndDate   string
}

var _ api.WeatherGateway = (*FakeWeatherGateway)(nil)

func (f *FakeWeatherGateway) Geocode(_ context.Context, name string) (*external.Location, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.GeocodeCalls++
	if f.GeocodeErr != nil {
		return nil, f.GeocodeErr
	}
	location, ok := f.Locations[name]
	if !ok {
		return nil, apperror.NotFound(msg.GetMessage("location.error.not-found"))
	}
	return &location, nil
}

func (f *FakeWeatherGateway) FetchWeather(_ context.Context, _, _ float64, startDate, endDate string) (external.Forecast, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.WeatherCalls++
	f.LastStartDate = startDate
	f.LastEndDate = endDate
	if f.WeatherErr != nil {
		return nil, f.WeatherErr
	}
	return f.Forecast, nil
}

// Calls returns the total number of provider calls.
func (f *FakeWeatherGateway) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.GeocodeCalls + f.WeatherCalls
}

// MemoryQueryGateway keeps records in a map keyed by id.
type MemoryQueryGateway struct {
	mu      sync.Mutex
	records map[int64]entity.WeatherQuery
	nextID  int64

	Err error
}

var _ db.QueryGateway = (*MemoryQueryGateway)(nil)

func NewMemoryQueryGateway() *MemoryQueryGateway {
	return &MemoryQueryGateway{records: make(map[int64]entity.WeatherQuery)}
}

func (m *MemoryQueryGateway) FindAll(_ context.Context, order model.SortOrder) ([]entity.WeatherQuery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	queries := make([]entity.WeatherQuery, 0, len(m.records))
	for _, query := range m.records {
		queries = append(queries, query)
	}
	sort.Slice(queries, func(i, j int) bool {
		if order == model.SortAsc {
			return queries[i].ID < queries[j].ID
		}
		return queries[i].ID > queries[j].ID
	})
	return queries, nil
}

func (m *MemoryQueryGateway) FindByID(_ context.Context, id int64) (*entity.WeatherQuery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	query, ok := m.records[id]
	if !ok {
		return nil, nil
	}
	return &query, nil
}

func (m *MemoryQueryGateway) Create(_ context.Context, query *entity.WeatherQuery) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	query.ID = m.nextID
	query.CreatedAt = time.Now().UTC()
	m.records[query.ID] = *query
	return nil
}

func (m *MemoryQueryGateway) Update(_ context.Context, query *entity.WeatherQuery) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	stored, ok := m.records[query.ID]
	if !ok {
		return nil
	}
	updated := *query
	updated.CreatedAt = stored.CreatedAt
	m.records[query.ID] = updated
	return nil
}

func (m *MemoryQueryGateway) DeleteByID(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.records[id]; !ok {
		return false, nil
	}
	delete(m.records, id)
	return true, nil
}

// Count returns the number of stored records.
func (m *MemoryQueryGateway) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}
