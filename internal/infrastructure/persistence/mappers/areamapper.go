package mappers

import (
	"miniticker/internal/domain/area"
	"miniticker/internal/infrastructure/persistence/models"
)

type AreaMapper interface {
	ToModel(a *area.Area) *models.AreaModel
	ToDomain(model *models.AreaModel) (*area.Area, error)
}

type AreaMapperImpl struct{}

func NewAreaMapper() AreaMapper {
	return &AreaMapperImpl{}
}

func (m *AreaMapperImpl) ToModel(a *area.Area) *models.AreaModel {
	return &models.AreaModel{
		ID:            a.ID(),
		Name:          a.Name(),
		Prefix:        a.Prefix(),
		Active:        a.IsActive(),
		ResponsibleID: a.ResponsibleID(),
		CreatedAt:     a.CreatedAt(),
		UpdatedAt:     a.UpdatedAt(),
	}
}

func (m *AreaMapperImpl) ToDomain(model *models.AreaModel) (*area.Area, error) {
	return area.ReconstructArea(
		model.ID,
		model.Name,
		model.Prefix,
		model.Active,
		model.ResponsibleID,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
