// Package usecases contains the ticket lifecycle operations. Each use case
// follows the command/result convention and is injected with the repositories
// it touches; mutations that span tables run inside a single transaction so
// the audit event and the mutation commit or roll back together.
package usecases

import (
	"context"

	"miniticker/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

// TransactionManager runs a function inside a database transaction carried in
// the context.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier delivers best-effort ticket mail. Failures are logged, never
// propagated.
type Notifier interface {
	SendTicketAssignedEmail(to, managerName, ticketNumber, subject string) error
	SendTicketStatusEmail(to, ticketNumber, newStatus string) error
}
