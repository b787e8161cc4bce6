package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"miniticker/internal/domain/requesttype"
	"miniticker/internal/infrastructure/persistence/mappers"
	"miniticker/internal/infrastructure/persistence/models"
	"miniticker/internal/shared/db"
	apperrors "miniticker/internal/shared/errors"
)

type RequestTypeRepository struct {
	db     *gorm.DB
	mapper mappers.RequestTypeMapper
}

func NewRequestTypeRepository(gdb *gorm.DB) *RequestTypeRepository {
	return &RequestTypeRepository{
		db:     gdb,
		mapper: mappers.NewRequestTypeMapper(),
	}
}

func (r *RequestTypeRepository) Save(ctx context.Context, rt *requesttype.RequestType) error {
	model := r.mapper.ToModel(rt)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("request type already exists in this area", rt.Name())
		}
		return fmt.Errorf("failed to save request type: %w", err)
	}

	return rt.SetID(model.ID)
}

func (r *RequestTypeRepository) Update(ctx context.Context, rt *requesttype.RequestType) error {
	model := r.mapper.ToModel(rt)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.RequestTypeModel{}).
		Where("id = ?", model.ID).
		Select("name", "area_id", "active", "updated_at").
		Updates(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("request type already exists in this area", rt.Name())
		}
		return fmt.Errorf("failed to update request type: %w", result.Error)
	}

	return nil
}

func (r *RequestTypeRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.RequestTypeModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete request type: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("request type not found")
	}
	return nil
}

func (r *RequestTypeRepository) GetByID(ctx context.Context, id uint) (*requesttype.RequestType, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.RequestTypeModel
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("request type not found")
		}
		return nil, fmt.Errorf("failed to find request type: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RequestTypeRepository) ListByArea(ctx context.Context, areaID uint, includeInactive bool) ([]*requesttype.RequestType, error) {
	return r.list(ctx, includeInactive, func(q *gorm.DB) *gorm.DB {
		return q.Where("area_id = ?", areaID)
	})
}

func (r *RequestTypeRepository) List(ctx context.Context, includeInactive bool) ([]*requesttype.RequestType, error) {
	return r.list(ctx, includeInactive, nil)
}

func (r *RequestTypeRepository) list(ctx context.Context, includeInactive bool, scope func(*gorm.DB) *gorm.DB) ([]*requesttype.RequestType, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.RequestTypeModel{})
	if scope != nil {
		query = scope(query)
	}
	if !includeInactive {
		query = query.Where("active = ?", true)
	}

	var modelList []models.RequestTypeModel
	if err := query.Order("name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list request types: %w", err)
	}

	types := make([]*requesttype.RequestType, 0, len(modelList))
	for i := range modelList {
		rt, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		types = append(types, rt)
	}

	return types, nil
}
