// Package dto defines the transfer shapes the ticket use cases return to the
// interface layer.
package dto

import (
	"time"

	"miniticker/internal/domain/activity"
	"miniticker/internal/domain/ticket"
)

type TicketDTO struct {
	ID            uint       `json:"id"`
	Number        string     `json:"number"`
	Subject       string     `json:"subject"`
	Description   string     `json:"description"`
	Priority      string     `json:"priority"`
	Status        string     `json:"status"`
	AreaID        uint       `json:"area_id"`
	RequestTypeID uint       `json:"request_type_id"`
	RequesterID   uint       `json:"requester_id"`
	ManagerID     *uint      `json:"manager_id,omitempty"`
	AttachmentURL *string    `json:"attachment_url,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// TicketDetailDTO adds the rendered description and the merged history to
// the base ticket fields.
type TicketDetailDTO struct {
	TicketDTO
	DescriptionHTML string            `json:"description_html"`
	History         []ActivityItemDTO `json:"history"`
}

type ActivityItemDTO struct {
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	TimeLabel string    `json:"time_label"`
	Tag       string    `json:"tag"`
	Timestamp time.Time `json:"timestamp"`
}

func FromTicket(t *ticket.Ticket) TicketDTO {
	return TicketDTO{
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

func FromRecord(r activity.Record) ActivityItemDTO {
	return ActivityItemDTO{
		Title:     r.Title,
		Message:   r.Message,
		TimeLabel: r.TimeLabel,
		Tag:       r.Tag,
		Timestamp: r.Timestamp,
	}
}
