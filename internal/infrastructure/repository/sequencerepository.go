package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"miniticker/internal/infrastructure/persistence/models"
	"miniticker/internal/shared/db"
	apperrors "miniticker/internal/shared/errors"
)

// SequenceRepository allocates ticket numbers from a per-(prefix, year)
// counter row. Next must run inside the transaction that creates the ticket;
// the row lock serializes concurrent creations so a sequence value is never
// handed out twice, and a rolled-back creation rolls the counter back with
// it.
type SequenceRepository struct {
	db *gorm.DB
}

func NewSequenceRepository(gdb *gorm.DB) *SequenceRepository {
	return &SequenceRepository{db: gdb}
}

func (r *SequenceRepository) Next(ctx context.Context, prefix string, year int) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var row models.TicketSequenceModel
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("prefix = ? AND year = ?", prefix, year).
		First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.TicketSequenceModel{Prefix: prefix, Year: year, Value: 1}
		if err := tx.Create(&row).Error; err != nil {
			// Another transaction created the row first; retry under the
			// lock.
			if apperrors.IsDuplicateError(err) {
				return r.Next(ctx, prefix, year)
			}
			return 0, fmt.Errorf("failed to create ticket sequence %s-%d: %w", prefix, year, err)
		}
		return row.Value, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to lock ticket sequence %s-%d: %w", prefix, year, err)
	}

	row.Value++
	if err := tx.Model(&models.TicketSequenceModel{}).
		Where("id = ?", row.ID).
		Update("value", row.Value).Error; err != nil {
		return 0, fmt.Errorf("failed to advance ticket sequence %s-%d: %w", prefix, year, err)
	}

	return row.Value, nil
}
