package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType enumerates all domain event types.
type EventType string

const (
	EventAdminCreated             EventType = "capturely.admin.created"
	EventAdminStatusChanged       EventType = "capturely.admin.status.changed"
	EventAdminDeleted             EventType = "capturely.admin.deleted"
	EventPhotographerCreated      EventType = "capturely.photographer.created"
	EventPhotographerStatusMoved  EventType = "capturely.photographer.status.changed"
	EventPhotographerRejected     EventType = "capturely.photographer.rejected"
	EventPhotographerDeleted      EventType = "capturely.photographer.deleted"
	EventBookingCreated           EventType = "capturely.booking.created"
	EventBookingAssigned          EventType = "capturely.booking.assigned"
	EventBookingReassigned        EventType = "capturely.booking.reassigned"
	EventBookingUnassigned        EventType = "capturely.booking.unassigned"
	EventAdminLoginSucceeded      EventType = "capturely.auth.login.succeeded"
	EventAdminLoginLocked         EventType = "capturely.auth.login.locked"
)

// AggregateType enumerates the aggregate root types for outbox events.
type AggregateType string

const (
	AggregateAdmin        AggregateType = "admin"
	AggregatePhotographer AggregateType = "photographer"
	AggregateBooking      AggregateType = "booking"
	AggregateAuth         AggregateType = "auth"
)

// OutboxDraft is the payload written to the event_outbox table.
type OutboxDraft struct {
	EventID       uuid.UUID       `json:"eventId"`
	AggregateType AggregateType   `json:"aggregateType"`
	AggregateID   string          `json:"aggregateId"`
	EventType     EventType       `json:"eventType"`
	PartitionKey  string          `json:"partitionKey"`
	Headers       json.RawMessage `json:"headers"`
	Payload       json.RawMessage `json:"payload"`
	OccurredAt    time.Time       `json:"occurredAt"`
}
