package ticket

import (
	"context"
	"time"

	vo "miniticker/internal/domain/ticket/valueobjects"
)

// Filter narrows ticket listings. Zero values mean "no constraint".
type Filter struct {
	Status      *vo.Status
	Priority    *vo.Priority
	AreaID      *uint
	RequesterID *uint
	ManagerID   *uint
	// HasManager filters on assignment state regardless of which manager.
	HasManager  *bool
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Search      string
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	List(ctx context.Context, filter Filter, offset, limit int) ([]*Ticket, int64, error)
	CountOpenByAreaID(ctx context.Context, areaID uint) (int64, error)
}

type CommentRepository interface {
	Save(ctx context.Context, c *Comment) error
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}
