package usecases

import (
	"context"
	"time"

	"miniticker/internal/application/ticket/dto"
	"miniticker/internal/domain/ticket"
	vo "miniticker/internal/domain/ticket/valueobjects"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
	"miniticker/internal/shared/utils"
)

type ListTicketsQuery struct {
	Status      string
	Priority    string
	AreaID      *uint
	RequesterID *uint
	ManagerID   *uint
	HasManager  *bool
	// CreatedFrom/CreatedTo are inclusive date bounds in "2006-01-02" form.
	CreatedFrom string
	CreatedTo   string
	Search      string
	Pagination  utils.Pagination
}

type ListTicketsResult struct {
	Tickets []dto.TicketDTO
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, log logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: log}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.Filter{
		AreaID:      query.AreaID,
		RequesterID: query.RequesterID,
		ManagerID:   query.ManagerID,
		HasManager:  query.HasManager,
		Search:      query.Search,
	}

	if query.CreatedFrom != "" {
		from, err := time.Parse("2006-01-02", query.CreatedFrom)
		if err != nil {
			return nil, errors.NewValidationError("created_from must be a date in YYYY-MM-DD form")
		}
		filter.CreatedFrom = &from
	}
	if query.CreatedTo != "" {
		to, err := time.Parse("2006-01-02", query.CreatedTo)
		if err != nil {
			return nil, errors.NewValidationError("created_to must be a date in YYYY-MM-DD form")
		}
		// Include the whole "to" day.
		bound := to.AddDate(0, 0, 1)
		filter.CreatedTo = &bound
	}

	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	page := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)

	tickets, total, err := uc.ticketRepo.List(ctx, filter, page.Offset(), page.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	result := &ListTicketsResult{
		Tickets: make([]dto.TicketDTO, 0, len(tickets)),
		Total:   total,
	}
	for _, t := range tickets {
		result.Tickets = append(result.Tickets, dto.FromTicket(t))
	}

	return result, nil
}
