package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"miniticker/internal/domain/area"
	"miniticker/internal/infrastructure/persistence/mappers"
	"miniticker/internal/infrastructure/persistence/models"
	"miniticker/internal/shared/db"
	apperrors "miniticker/internal/shared/errors"
)

type AreaRepository struct {
	db     *gorm.DB
	mapper mappers.AreaMapper
}

func NewAreaRepository(gdb *gorm.DB) *AreaRepository {
	return &AreaRepository{
		db:     gdb,
		mapper: mappers.NewAreaMapper(),
	}
}

func (r *AreaRepository) Save(ctx context.Context, a *area.Area) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("area name already exists", a.Name())
		}
		return fmt.Errorf("failed to save area: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AreaRepository) Update(ctx context.Context, a *area.Area) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select forces writing a cleared responsible_id and the inactive flag.
	result := tx.
		Model(&models.AreaModel{}).
		Where("id = ?", model.ID).
		Select("name", "prefix", "active", "responsible_id", "updated_at").
		Updates(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("user already responsible for another area")
		}
		return fmt.Errorf("failed to update area: %w", result.Error)
	}

	return nil
}

func (r *AreaRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.AreaModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete area: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("area not found")
	}
	return nil
}

func (r *AreaRepository) GetByID(ctx context.Context, id uint) (*area.Area, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.AreaModel
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("area not found")
		}
		return nil, fmt.Errorf("failed to find area: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AreaRepository) GetByResponsibleID(ctx context.Context, userID uint) (*area.Area, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.AreaModel
	if err := tx.Where("responsible_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find area by responsible: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AreaRepository) List(ctx context.Context, includeInactive bool) ([]*area.Area, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AreaModel{})
	if !includeInactive {
		query = query.Where("active = ?", true)
	}

	var modelList []models.AreaModel
	if err := query.Order("name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}

	areas := make([]*area.Area, 0, len(modelList))
	for i := range modelList {
		a, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}

	return areas, nil
}
