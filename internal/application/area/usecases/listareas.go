package usecases

import (
	"context"

	"miniticker/internal/application/area/dto"
	"miniticker/internal/domain/area"
	"miniticker/internal/shared/logger"
)

type ListAreasQuery struct {
	IncludeInactive bool
}

type ListAreasUseCase struct {
	areaRepo area.Repository
	logger   logger.Interface
}

func NewListAreasUseCase(areaRepo area.Repository, log logger.Interface) *ListAreasUseCase {
	return &ListAreasUseCase{areaRepo: areaRepo, logger: log}
}

func (uc *ListAreasUseCase) Execute(ctx context.Context, query ListAreasQuery) ([]dto.AreaDTO, error) {
	areas, err := uc.areaRepo.List(ctx, query.IncludeInactive)
	if err != nil {
		return nil, err
	}
	return dto.FromAreas(areas), nil
}
