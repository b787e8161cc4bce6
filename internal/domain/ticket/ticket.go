// Package ticket contains the ticket aggregate and the guarded state machine
// that governs its lifecycle.
package ticket

import (
	"fmt"
	"time"

	vo "miniticker/internal/domain/ticket/valueobjects"
	uservo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/shared/biztime"
	"miniticker/internal/shared/errors"
)

type Ticket struct {
	id            uint
	number        string
	subject       string
	description   string
	priority      vo.Priority
	status        vo.Status
	areaID        uint
	requestTypeID uint
	requesterID   uint
	managerID     *uint
	attachmentURL *string
	createdAt     time.Time
	updatedAt     *time.Time
}

func NewTicket(
	subject string,
	description string,
	priority vo.Priority,
	areaID uint,
	requestTypeID uint,
	requesterID uint,
) (*Ticket, error) {
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > 200 {
		return nil, fmt.Errorf("subject exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if areaID == 0 {
		return nil, fmt.Errorf("area ID is required")
	}
	if requestTypeID == 0 {
		return nil, fmt.Errorf("request type ID is required")
	}
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}

	return &Ticket{
		subject:       subject,
		description:   description,
		priority:      priority,
		status:        vo.StatusNew,
		areaID:        areaID,
		requestTypeID: requestTypeID,
		requesterID:   requesterID,
		createdAt:     biztime.NowUTC(),
	}, nil
}

func ReconstructTicket(
	id uint,
	number string,
	subject string,
	description string,
	priority vo.Priority,
	status vo.Status,
	areaID uint,
	requestTypeID uint,
	requesterID uint,
	managerID *uint,
	attachmentURL *string,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		id:            id,
		number:        number,
		subject:       subject,
		description:   description,
		priority:      priority,
		status:        status,
		areaID:        areaID,
		requestTypeID: requestTypeID,
		requesterID:   requesterID,
		managerID:     managerID,
		attachmentURL: attachmentURL,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (t *Ticket) ID() uint               { return t.id }
func (t *Ticket) Number() string         { return t.number }
func (t *Ticket) Subject() string        { return t.subject }
func (t *Ticket) Description() string    { return t.description }
func (t *Ticket) Priority() vo.Priority  { return t.priority }
func (t *Ticket) Status() vo.Status      { return t.status }
func (t *Ticket) AreaID() uint           { return t.areaID }
func (t *Ticket) RequestTypeID() uint    { return t.requestTypeID }
func (t *Ticket) RequesterID() uint      { return t.requesterID }
func (t *Ticket) ManagerID() *uint       { return t.managerID }
func (t *Ticket) AttachmentURL() *string { return t.attachmentURL }
func (t *Ticket) CreatedAt() time.Time   { return t.createdAt }
func (t *Ticket) UpdatedAt() *time.Time  { return t.updatedAt }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetNumber assigns the allocated ticket number. The number is immutable once
// set.
func (t *Ticket) SetNumber(number string) error {
	if len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

func (t *Ticket) SetAttachmentURL(url string) {
	t.attachmentURL = &url
	t.touch()
}

// ChangeStatus validates and applies a status transition:
//
//   - a ticket in a terminal state accepts no further transitions
//   - the target rank must be strictly greater than the current rank, except
//     rejected, which is reachable from any non-terminal state
//   - rejecting requires a non-empty reason
//   - statuses gated by statusPermissions require a matching actor role
//
// Status and the updated-at stamp are the only fields mutated; recording the
// audit event and the reason comment is the lifecycle service's job.
func (t *Ticket) ChangeStatus(newStatus vo.Status, actorRole uservo.Role, reason string) error {
	if !newStatus.IsValid() {
		return errors.NewValidationError(fmt.Sprintf("invalid status: %s", newStatus))
	}
	if t.status.IsTerminal() {
		return errors.NewInvalidTransitionError(
			"ticket already finalized",
			fmt.Sprintf("ticket %s is %s", t.number, t.status),
		)
	}
	if newStatus != vo.StatusRejected && newStatus.Rank() <= t.status.Rank() {
		return errors.NewInvalidTransitionError(
			"cannot move ticket backward",
			fmt.Sprintf("from %s to %s", t.status, newStatus),
		)
	}
	if newStatus == vo.StatusRejected && len(reason) == 0 {
		return errors.NewValidationError("a reason is required to reject a ticket")
	}
	if !CanSetStatus(actorRole, newStatus) {
		return errors.NewForbiddenError(
			fmt.Sprintf("role %s may not move a ticket to %s", actorRole, newStatus),
		)
	}

	t.status = newStatus
	t.touch()
	return nil
}

// UpdateDetails edits subject, description and priority. Direct edits are
// only permitted while the ticket is still new.
func (t *Ticket) UpdateDetails(subject, description string, priority vo.Priority) error {
	if !t.status.IsNew() {
		return errors.NewInvalidTransitionError(
			"only tickets in new status can be edited",
			fmt.Sprintf("ticket %s is %s", t.number, t.status),
		)
	}
	if len(subject) == 0 {
		return errors.NewValidationError("subject is required")
	}
	if len(subject) > 200 {
		return errors.NewValidationError("subject exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return errors.NewValidationError("description is required")
	}
	if !priority.IsValid() {
		return errors.NewValidationError("invalid priority")
	}

	t.subject = subject
	t.description = description
	t.priority = priority
	t.touch()
	return nil
}

// AssignManager sets the assigned manager pointer.
func (t *Ticket) AssignManager(managerID uint) error {
	if managerID == 0 {
		return errors.NewValidationError("manager ID cannot be zero")
	}
	if t.status.IsTerminal() {
		return errors.NewInvalidTransitionError(
			"ticket already finalized",
			fmt.Sprintf("ticket %s is %s", t.number, t.status),
		)
	}
	t.managerID = &managerID
	t.touch()
	return nil
}

func (t *Ticket) touch() {
	now := biztime.NowUTC()
	t.updatedAt = &now
}
