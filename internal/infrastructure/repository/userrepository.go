package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"miniticker/internal/domain/user"
	"miniticker/internal/infrastructure/persistence/mappers"
	"miniticker/internal/infrastructure/persistence/models"
	"miniticker/internal/shared/db"
	apperrors "miniticker/internal/shared/errors"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(gdb *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     gdb,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("email already registered", u.Email().String())
		}
		return fmt.Errorf("failed to save user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select forces writing zero-valued fields (cleared area link, inactive
	// flag) that Updates would otherwise skip.
	result := tx.
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Select("name", "email", "password_hash", "role", "area_id", "active",
			"photo_url", "must_change_password", "updated_at").
		Updates(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("email already registered", u.Email().String())
		}
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return r.getOne(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("id = ?", id)
	})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.getOne(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("email = ?", email)
	})
}

func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id uint) (*user.User, error) {
	return r.getOne(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id)
	})
}

func (r *UserRepository) getOne(ctx context.Context, scope func(*gorm.DB) *gorm.DB) (*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.UserModel
	if err := scope(tx).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) List(ctx context.Context, includeInactive bool) ([]*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.UserModel{})
	if !includeInactive {
		query = query.Where("active = ?", true)
	}

	var modelList []models.UserModel
	if err := query.Order("name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0, len(modelList))
	for i := range modelList {
		u, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}
