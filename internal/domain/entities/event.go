package entities

import "time"

// EventType names a notification published to user channels.
type EventType string

const (
	EventSolicitationCreated           EventType = "solicitation.created"
	EventSolicitationAccepted          EventType = "solicitation.accepted"
	EventSolicitationValueSuggested    EventType = "solicitation.value_suggested"
	EventSolicitationConsented         EventType = "solicitation.consented"
	EventSolicitationFinalValueDefined EventType = "solicitation.final_value_defined"
	EventSolicitationInProgress        EventType = "solicitation.in_progress"
	EventSolicitationFinished          EventType = "solicitation.finished"
	EventSolicitationCancelled         EventType = "solicitation.cancelled"
	EventSolicitationExpired           EventType = "solicitation.expired"
	EventChatMessage                   EventType = "chat.message"
)

type Event struct {
	Type EventType `json:"type"`
	Data any       `json:"data"`
	At   time.Time `json:"at"`
}
