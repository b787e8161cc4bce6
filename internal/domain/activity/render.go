package activity

import (
	"strings"
	"time"

	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/ticket"
)

// messageTemplates holds the first-person and third-person renderings of an
// event kind. Placeholders in braces are filled from the event payload plus
// {actor} and {number}.
type messageTemplates struct {
	first string
	third string
}

var ticketTemplates = map[audit.TicketEventKind]messageTemplates{
	audit.TicketCreated: {
		first: "You created ticket {number}",
		third: "{actor} created ticket {number}",
	},
	audit.TicketStatusChanged: {
		first: "You moved ticket {number} from {from} to {to}",
		third: "{actor} moved ticket {number} from {from} to {to}",
	},
	audit.TicketAssigned: {
		first: "You assigned ticket {number} to {assignee}",
		third: "{actor} assigned ticket {number} to {assignee}",
	},
	audit.TicketCommentAdded: {
		first: "You commented on ticket {number}",
		third: "{actor} commented on ticket {number}",
	},
	audit.TicketUpdated: {
		first: "You updated ticket {number}",
		third: "{actor} updated ticket {number}",
	},
}

var systemTemplates = map[audit.SystemEventKind]messageTemplates{
	audit.UserLoggedIn: {
		first: "You signed in",
		third: "{actor} signed in",
	},
	audit.UserLoggedOut: {
		first: "You signed out",
		third: "{actor} signed out",
	},
	audit.UserCreated: {
		first: "You created user {name}",
		third: "{actor} created user {name}",
	},
	audit.UserUpdated: {
		first: "You updated user {name}",
		third: "{actor} updated user {name}",
	},
	audit.UserRoleChanged: {
		first: "You changed the role of {name} to {role}",
		third: "{actor} changed the role of {name} to {role}",
	},
	audit.UserActivated: {
		first: "You activated user {name}",
		third: "{actor} activated user {name}",
	},
	audit.UserDeactivated: {
		first: "You deactivated user {name}",
		third: "{actor} deactivated user {name}",
	},
	audit.AreaCreated: {
		first: "You created area {name}",
		third: "{actor} created area {name}",
	},
	audit.AreaUpdated: {
		first: "You updated area {name}",
		third: "{actor} updated area {name}",
	},
	audit.AreaActivated: {
		first: "You activated area {name}",
		third: "{actor} activated area {name}",
	},
	audit.AreaDeactivated: {
		first: "You deactivated area {name}",
		third: "{actor} deactivated area {name}",
	},
	audit.AreaDeleted: {
		first: "You deleted area {name}",
		third: "{actor} deleted area {name}",
	},
	audit.AreaResponsibleSet: {
		first: "You made {name} responsible for area {area}",
		third: "{actor} made {name} responsible for area {area}",
	},
	audit.AreaResponsibleRemoved: {
		first: "You removed {name} as responsible for area {area}",
		third: "{actor} removed {name} as responsible for area {area}",
	},
	audit.RequestTypeCreated: {
		first: "You created request type {name}",
		third: "{actor} created request type {name}",
	},
	audit.RequestTypeUpdated: {
		first: "You updated request type {name}",
		third: "{actor} updated request type {name}",
	},
	audit.RequestTypeActivated: {
		first: "You activated request type {name}",
		third: "{actor} activated request type {name}",
	},
	audit.RequestTypeDeactivated: {
		first: "You deactivated request type {name}",
		third: "{actor} deactivated request type {name}",
	},
	audit.RequestTypeDeleted: {
		first: "You deleted request type {name}",
		third: "{actor} deleted request type {name}",
	},
}

func renderTemplate(tpl messageTemplates, firstPerson bool, vars map[string]string) string {
	msg := tpl.third
	if firstPerson {
		msg = tpl.first
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// RenderTicketEvent renders one ticket event from the viewer's perspective.
// actorName is the display name of the event's acting user; ticketNumber the
// number of the related ticket.
func RenderTicketEvent(e *audit.TicketEvent, ticketNumber, actorName string, viewerID uint, now time.Time) Record {
	tpl, ok := ticketTemplates[e.Kind()]
	if !ok {
		tpl = messageTemplates{
			first: "You acted on ticket {number}",
			third: "{actor} acted on ticket {number}",
		}
	}

	vars := map[string]string{
		"actor":  actorName,
		"number": ticketNumber,
	}
	for k, v := range e.Payload() {
		vars[k] = v
	}

	return Record{
		Title:     ticketNumber,
		Message:   renderTemplate(tpl, e.ActorID() == viewerID, vars),
		TimeLabel: TimeLabel(e.CreatedAt(), now),
		Tag:       e.Kind().String(),
		Timestamp: e.CreatedAt(),
		SourceID:  e.ID(),
	}
}

// RenderSystemEvent renders one system event. System events carry the
// literal "System" title since they have no related ticket.
func RenderSystemEvent(e *audit.SystemEvent, actorName string, viewerID uint, now time.Time) Record {
	tpl, ok := systemTemplates[e.Kind()]
	if !ok {
		tpl = messageTemplates{
			first: "You performed a system action",
			third: "{actor} performed a system action",
		}
	}

	vars := map[string]string{"actor": actorName}
	for k, v := range e.Payload() {
		vars[k] = v
	}

	return Record{
		Title:     SystemTitle,
		Message:   renderTemplate(tpl, e.ActorID() == viewerID, vars),
		TimeLabel: TimeLabel(e.CreatedAt(), now),
		Tag:       e.Kind().String(),
		Timestamp: e.CreatedAt(),
		SourceID:  e.ID(),
	}
}

// RenderComment renders a ticket comment as a feed entry. The comment body
// itself travels in the message so ticket history pages can show it inline.
func RenderComment(c *ticket.Comment, ticketNumber, authorName string, viewerID uint, now time.Time) Record {
	var msg string
	if c.AuthorID() == viewerID {
		msg = "You: " + c.Body()
	} else {
		msg = authorName + ": " + c.Body()
	}

	return Record{
		Title:     ticketNumber,
		Message:   msg,
		TimeLabel: TimeLabel(c.CreatedAt(), now),
		Tag:       "comment",
		Timestamp: c.CreatedAt(),
		SourceID:  c.ID(),
	}
}
