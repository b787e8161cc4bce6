package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"miniticker/internal/domain/audit"
	"miniticker/internal/infrastructure/persistence/mappers"
	"miniticker/internal/infrastructure/persistence/models"
	"miniticker/internal/shared/db"
)

type SystemEventRepository struct {
	db     *gorm.DB
	mapper mappers.EventMapper
}

func NewSystemEventRepository(gdb *gorm.DB) *SystemEventRepository {
	return &SystemEventRepository{
		db:     gdb,
		mapper: mappers.NewEventMapper(),
	}
}

func (r *SystemEventRepository) Save(ctx context.Context, e *audit.SystemEvent) error {
	model, err := r.mapper.SystemEventToModel(e)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save system event: %w", err)
	}

	return e.SetID(model.ID)
}

func (r *SystemEventRepository) ListByActorID(ctx context.Context, actorID uint, limit int) ([]*audit.SystemEvent, error) {
	return r.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("actor_id = ?", actorID)
	}, limit)
}

func (r *SystemEventRepository) ListRecent(ctx context.Context, limit int) ([]*audit.SystemEvent, error) {
	return r.list(ctx, nil, limit)
}

func (r *SystemEventRepository) list(ctx context.Context, scope func(*gorm.DB) *gorm.DB, limit int) ([]*audit.SystemEvent, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.SystemEventModel{})
	if scope != nil {
		query = scope(query)
	}
	query = query.Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var modelList []models.SystemEventModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list system events: %w", err)
	}

	events := make([]*audit.SystemEvent, 0, len(modelList))
	for i := range modelList {
		e, err := r.mapper.SystemEventToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, nil
}
