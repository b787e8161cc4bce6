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

type TicketEventRepository struct {
	db     *gorm.DB
	mapper mappers.EventMapper
}

func NewTicketEventRepository(gdb *gorm.DB) *TicketEventRepository {
	return &TicketEventRepository{
		db:     gdb,
		mapper: mappers.NewEventMapper(),
	}
}

func (r *TicketEventRepository) Save(ctx context.Context, e *audit.TicketEvent) error {
	model, err := r.mapper.TicketEventToModel(e)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket event: %w", err)
	}

	return e.SetID(model.ID)
}

func (r *TicketEventRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*audit.TicketEvent, error) {
	return r.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("ticket_id = ?", ticketID)
	}, 0)
}

func (r *TicketEventRepository) ListByActorID(ctx context.Context, actorID uint, limit int) ([]*audit.TicketEvent, error) {
	return r.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("actor_id = ?", actorID)
	}, limit)
}

func (r *TicketEventRepository) ListRecent(ctx context.Context, limit int) ([]*audit.TicketEvent, error) {
	return r.list(ctx, nil, limit)
}

func (r *TicketEventRepository) list(ctx context.Context, scope func(*gorm.DB) *gorm.DB, limit int) ([]*audit.TicketEvent, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketEventModel{})
	if scope != nil {
		query = scope(query)
	}
	query = query.Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var modelList []models.TicketEventModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket events: %w", err)
	}

	events := make([]*audit.TicketEvent, 0, len(modelList))
	for i := range modelList {
		e, err := r.mapper.TicketEventToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, nil
}
