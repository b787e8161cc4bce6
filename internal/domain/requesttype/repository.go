package requesttype

import "context"

type Repository interface {
	Save(ctx context.Context, rt *RequestType) error
	Update(ctx context.Context, rt *RequestType) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*RequestType, error)
	ListByArea(ctx context.Context, areaID uint, includeInactive bool) ([]*RequestType, error)
	List(ctx context.Context, includeInactive bool) ([]*RequestType, error)
}
