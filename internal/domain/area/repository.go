package area

import "context"

type Repository interface {
	Save(ctx context.Context, a *Area) error
	Update(ctx context.Context, a *Area) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Area, error)
	// GetByResponsibleID returns the area a user is responsible for, or nil
	// when the user is responsible for none.
	GetByResponsibleID(ctx context.Context, userID uint) (*Area, error)
	List(ctx context.Context, includeInactive bool) ([]*Area, error)
}
