package usecases

import (
	"context"

	"miniticker/internal/application/requesttype/dto"
	"miniticker/internal/domain/requesttype"
	"miniticker/internal/shared/logger"
)

type ListRequestTypesQuery struct {
	// AreaID narrows the listing to one area when set.
	AreaID          *uint
	IncludeInactive bool
}

type ListRequestTypesUseCase struct {
	typeRepo requesttype.Repository
	logger   logger.Interface
}

func NewListRequestTypesUseCase(typeRepo requesttype.Repository, log logger.Interface) *ListRequestTypesUseCase {
	return &ListRequestTypesUseCase{typeRepo: typeRepo, logger: log}
}

func (uc *ListRequestTypesUseCase) Execute(ctx context.Context, query ListRequestTypesQuery) ([]dto.RequestTypeDTO, error) {
	var (
		types []*requesttype.RequestType
		err   error
	)
	if query.AreaID != nil {
		types, err = uc.typeRepo.ListByArea(ctx, *query.AreaID, query.IncludeInactive)
	} else {
		types, err = uc.typeRepo.List(ctx, query.IncludeInactive)
	}
	if err != nil {
		return nil, err
	}
	return dto.FromRequestTypes(types), nil
}
