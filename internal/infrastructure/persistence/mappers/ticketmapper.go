// Package mappers converts between domain entities and persistence models.
package mappers

import (
	"fmt"

	"miniticker/internal/domain/ticket"
	vo "miniticker/internal/domain/ticket/valueobjects"
	"miniticker/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:            t.ID(),
		Number:        t.Number(),
		Subject:       t.Subject(),
		Description:   t.Description(),
		Priority:      t.Priority().String(),
		Status:        t.Status().String(),
		AreaID:        t.AreaID(),
		RequestTypeID: t.RequestTypeID(),
		RequesterID:   t.RequesterID(),
		ManagerID:     t.ManagerID(),
		AttachmentURL: t.AttachmentURL(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid priority in ticket %d: %w", model.ID, err)
	}
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status in ticket %d: %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.Subject,
		model.Description,
		priority,
		status,
		model.AreaID,
		model.RequestTypeID,
		model.RequesterID,
		model.ManagerID,
		model.AttachmentURL,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID(),
		Body:      c.Body(),
		CreatedAt: c.CreatedAt(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Body,
		model.CreatedAt,
	)
}
