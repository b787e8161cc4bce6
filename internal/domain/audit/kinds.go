// Package audit records what happened in the system: ticket lifecycle events
// feeding the ticket history, and system events covering everything else
// (sessions, catalog and user administration).
package audit

// TicketEventKind identifies a ticket lifecycle event.
type TicketEventKind string

const (
	TicketCreated       TicketEventKind = "ticket_created"
	TicketStatusChanged TicketEventKind = "ticket_status_changed"
	TicketAssigned      TicketEventKind = "ticket_assigned"
	TicketCommentAdded  TicketEventKind = "ticket_comment_added"
	TicketUpdated       TicketEventKind = "ticket_updated"
)

var validTicketEventKinds = map[TicketEventKind]bool{
	TicketCreated:       true,
	TicketStatusChanged: true,
	TicketAssigned:      true,
	TicketCommentAdded:  true,
	TicketUpdated:       true,
}

func (k TicketEventKind) IsValid() bool {
	return validTicketEventKinds[k]
}

func (k TicketEventKind) String() string {
	return string(k)
}

// SystemEventKind identifies an administrative or session event outside of
// any single ticket.
type SystemEventKind string

const (
	UserLoggedIn  SystemEventKind = "user_logged_in"
	UserLoggedOut SystemEventKind = "user_logged_out"

	UserCreated     SystemEventKind = "user_created"
	UserUpdated     SystemEventKind = "user_updated"
	UserRoleChanged SystemEventKind = "user_role_changed"
	UserActivated   SystemEventKind = "user_activated"
	UserDeactivated SystemEventKind = "user_deactivated"

	AreaCreated            SystemEventKind = "area_created"
	AreaUpdated            SystemEventKind = "area_updated"
	AreaActivated          SystemEventKind = "area_activated"
	AreaDeactivated        SystemEventKind = "area_deactivated"
	AreaDeleted            SystemEventKind = "area_deleted"
	AreaResponsibleSet     SystemEventKind = "area_responsible_set"
	AreaResponsibleRemoved SystemEventKind = "area_responsible_removed"

	RequestTypeCreated     SystemEventKind = "request_type_created"
	RequestTypeUpdated     SystemEventKind = "request_type_updated"
	RequestTypeActivated   SystemEventKind = "request_type_activated"
	RequestTypeDeactivated SystemEventKind = "request_type_deactivated"
	RequestTypeDeleted     SystemEventKind = "request_type_deleted"
)

var validSystemEventKinds = map[SystemEventKind]bool{
	UserLoggedIn:           true,
	UserLoggedOut:          true,
	UserCreated:            true,
	UserUpdated:            true,
	UserRoleChanged:        true,
	UserActivated:          true,
	UserDeactivated:        true,
	AreaCreated:            true,
	AreaUpdated:            true,
	AreaActivated:          true,
	AreaDeactivated:        true,
	AreaDeleted:            true,
	AreaResponsibleSet:     true,
	AreaResponsibleRemoved: true,
	RequestTypeCreated:     true,
	RequestTypeUpdated:     true,
	RequestTypeActivated:   true,
	RequestTypeDeactivated: true,
	RequestTypeDeleted:     true,
}

func (k SystemEventKind) IsValid() bool {
	return validSystemEventKinds[k]
}

func (k SystemEventKind) String() string {
	return string(k)
}
