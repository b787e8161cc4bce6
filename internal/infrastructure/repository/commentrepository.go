package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"miniticker/internal/domain/ticket"
	"miniticker/internal/infrastructure/persistence/mappers"
	"miniticker/internal/infrastructure/persistence/models"
	"miniticker/internal/shared/db"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(gdb *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CommentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.CommentModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(modelList))
	for i := range modelList {
		c, err := r.mapper.CommentToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, nil
}
