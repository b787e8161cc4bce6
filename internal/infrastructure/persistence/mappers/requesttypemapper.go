package mappers

import (
	"miniticker/internal/domain/requesttype"
	"miniticker/internal/infrastructure/persistence/models"
)

type RequestTypeMapper interface {
	ToModel(rt *requesttype.RequestType) *models.RequestTypeModel
	ToDomain(model *models.RequestTypeModel) (*requesttype.RequestType, error)
}

type RequestTypeMapperImpl struct{}

func NewRequestTypeMapper() RequestTypeMapper {
	return &RequestTypeMapperImpl{}
}

func (m *RequestTypeMapperImpl) ToModel(rt *requesttype.RequestType) *models.RequestTypeModel {
	return &models.RequestTypeModel{
		ID:        rt.ID(),
		Name:      rt.Name(),
		AreaID:    rt.AreaID(),
		Active:    rt.IsActive(),
		CreatedAt: rt.CreatedAt(),
		UpdatedAt: rt.UpdatedAt(),
	}
}

func (m *RequestTypeMapperImpl) ToDomain(model *models.RequestTypeModel) (*requesttype.RequestType, error) {
	return requesttype.ReconstructRequestType(
		model.ID,
		model.Name,
		model.AreaID,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
