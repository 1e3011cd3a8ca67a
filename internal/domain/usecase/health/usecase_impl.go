package health

import (
	"context"

	"weather-query-api/internal/domain/gateway/db"
	"weather-query-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway db.HealthDBGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway) UseCase {
	return &healthUseCase{
		dbGateway: dbGateway,
	}
}

// CheckHealth always reports the process as alive; Status follows the store.
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	dbHealth := useCase.dbGateway.Health(ctx)

	return model.HealthResponse{
		OK:       true,
		Status:   dbHealth.Status,
		Database: dbHealth,
	}
}
