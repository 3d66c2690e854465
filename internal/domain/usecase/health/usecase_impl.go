package health

import (
	"context"

	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	cacheGateway cache.HealthGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, cacheGateway cache.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		cacheGateway: cacheGateway,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	return model.NewHealthResponse(useCase.dbGateway.Health(ctx), useCase.cacheGateway.Health(ctx))
}
