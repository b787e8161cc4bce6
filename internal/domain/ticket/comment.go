package ticket

import (
	"fmt"
	"time"

	"miniticker/internal/shared/biztime"
)

// Comment is a message attached to a ticket by a participant. Rejection
// reasons are stored as comments by the rejecting actor.
type Comment struct {
	id        uint
	ticketID  uint
	authorID  uint
	body      string
	createdAt time.Time
}

func NewComment(ticketID, authorID uint, body string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("comment body is required")
	}
	if len(body) > 2000 {
		return nil, fmt.Errorf("comment body exceeds maximum length of 2000 characters")
	}

	return &Comment{
		ticketID:  ticketID,
		authorID:  authorID,
		body:      body,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructComment(id, ticketID, authorID uint, body string, createdAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	return &Comment{
		id:        id,
		ticketID:  ticketID,
		authorID:  authorID,
		body:      body,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) TicketID() uint       { return c.ticketID }
func (c *Comment) AuthorID() uint       { return c.authorID }
func (c *Comment) Body() string         { return c.body }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
