package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NewAdminCreatedEvent creates an admin lifecycle event.
func NewAdminCreatedEvent(admin *Admin) OutboxDraft {
	payload, _ := json.Marshal(map[string]string{
		"admin_id": admin.ID.String(),
		"email":    admin.Email,
		"role":     string(admin.Role),
	})
	return OutboxDraft{
		EventID:       uuid.New(),
		AggregateType: AggregateAdmin,
		AggregateID:   admin.ID.String(),
		EventType:     EventAdminCreated,
		PartitionKey:  admin.ID.String(),
		Headers:       json.RawMessage(`{}`),
		Payload:       payload,
		OccurredAt:    time.Now(),
	}
}

// NewAdminStatusChangedEvent records an admin status transition.
func NewAdminStatusChangedEvent(adminID uuid.UUID, from, to string) OutboxDraft {
	payload, _ := json.Marshal(map[string]string{
		"admin_id": adminID.String(),
		"from":     from,
		"to":       to,
	})
	return OutboxDraft{
		EventID:       uuid.New(),
		AggregateType: AggregateAdmin,
		AggregateID:   adminID.String(),
		EventType:     EventAdminStatusChanged,
		PartitionKey:  adminID.String(),
		Headers:       json.RawMessage(`{}`),
		Payload:       payload,
		OccurredAt:    time.Now(),
	}
}

// NewAdminDeletedEvent records an admin row removal.
func NewAdminDeletedEvent(adminID uuid.UUID, email string) OutboxDraft {
	payload, _ := json.Marshal(map[string]string{
		"admin_id": adminID.String(),
		"email":    email,
	})
	return OutboxDraft{
		EventID:       uuid.New(),
		AggregateType: AggregateAdmin,
		AggregateID:   adminID.String(),
		EventType:     EventAdminDeleted,
		PartitionKey:  adminID.String(),
		Headers:       json.RawMessage(`{}`),
		Payload:       payload,
		OccurredAt:    time.Now(),
	}
}

// NewPhotographerCreatedEvent creates a photographer lifecycle event.
func NewPhotographerCreatedEvent(p *Photographer) OutboxDraft {
	payload, _ := json.Marshal(map[string]string{
		"photographer_id": p.ID.String(),
		"email":           p.Email,
		"specialization":  p.Specialization,
	})
	return OutboxDraft{
		EventID:       uuid.New(),
		AggregateType: AggregatePhotographer,
		AggregateID:   p.ID.String(),
		EventType:     EventPhotographerCreated,
		PartitionKey:  p.ID.String(),
		Headers:       json.RawMessage(`{}`),
		Payload:       payload,
		OccurredAt:    time.Now(),
	}
}

// NewPhotographerStatusChangedEvent records a photographer status transition.
func NewPhotographerStatusChangedEvent(photographerID uuid.UUID, from, to string) OutboxDraft {
	payload, _ := json.Marshal(map[string]string{
		"photographer_id": photographerID.String(),
		"from":            from,
		"to":              to,
	})
	return OutboxDraft{
		EventID:       uuid.New(),
		AggregateType: AggregatePhotographer,
		AggregateID:   photographerID.String(),
		EventType:     EventPhotographerStatusMoved,
		PartitionKey:  photographerID.String(),
		Headers:       json.RawMessage(`{}`),
		Payload:       payload,
		OccurredAt:    time.Now(),
	}
}

// NewPhotographerRemovedEvent records rejection or deletion of a photographer.
// Rejected applicants and deleted profiles share a removal event with the
// reason distinguishing the two.
func NewPhotographerRemovedEvent(photographerID uuid.UUID, rejected bool, reason string) OutboxDraft {
	evtType := EventPhotographerDeleted
	if rejected {
		evtType = EventPhotographerRejected
	}
	payload, _ := json.Marshal(map[string]string{
		"photographer_id": photographerID.String(),
		"reason":          reason,
	})
	return OutboxDraft{
		EventID:       uuid.New(),
		AggregateType: AggregatePhotographer,
		AggregateID:   photographerID.String(),
		EventType:     evtType,
		PartitionKey:  photographerID.String(),
		Headers:       json.RawMessage(`{}`),
		Payload:       payload,
		OccurredAt:    time.Now(),
	}
}

// NewBookingCreatedEvent creates a booking lifecycle event.
func NewBookingCreatedEvent(b *Booking) OutboxDraft {
	payload, _ := json.Marshal(map[string]string{
		"booking_id": b.ID.String(),
		"event_type": b.EventType,
		"event_date": b.EventDate.Format(time.RFC3339),
	})
	return OutboxDraft{
		EventID:       uuid.New(),
		AggregateType: AggregateBooking,
		AggregateID:   b.ID.String(),
		EventType:     EventBookingCreated,
		PartitionKey:  b.ID.String(),
		Headers:       json.RawMessage(`{}`),
		Payload:       payload,
		OccurredAt:    time.Now(),
	}
}

// NewBookingAssignedEvent records an assignment. reassigned selects the
// reassignment event type, and previousPhotographerID may be nil for a
// first assignment.
func NewBookingAssignedEvent(bookingID, photographerID uuid.UUID, previousPhotographerID *uuid.UUID, reassigned bool) OutboxDraft {
	evtType := EventBookingAssigned
	if reassigned {
		evtType = EventBookingReassigned
	}
	fields := map[string]string{
		"booking_id":      bookingID.String(),
		"photographer_id": photographerID.String(),
	}
	if previousPhotographerID != nil {
		fields["previous_photographer_id"] = previousPhotographerID.String()
	}
	payload, _ := json.Marshal(fields)
	return OutboxDraft{
		EventID:       uuid.New(),
		AggregateType: AggregateBooking,
		AggregateID:   bookingID.String(),
		EventType:     evtType,
		PartitionKey:  bookingID.String(),
		Headers:       json.RawMessage(`{}`),
		Payload:       payload,
		OccurredAt:    time.Now(),
	}
}

// NewBookingUnassignedEvent records an assignment being cleared.
func NewBookingUnassignedEvent(bookingID, photographerID uuid.UUID) OutboxDraft {
	payload, _ := json.Marshal(map[string]string{
		"booking_id":      bookingID.String(),
		"photographer_id": photographerID.String(),
	})
	return OutboxDraft{
		EventID:       uuid.New(),
		AggregateType: AggregateBooking,
		AggregateID:   bookingID.String(),
		EventType:     EventBookingUnassigned,
		PartitionKey:  bookingID.String(),
		Headers:       json.RawMessage(`{}`),
		Payload:       payload,
		OccurredAt:    time.Now(),
	}
}

// NewLoginEvent records an authentication outcome worth auditing.
func NewLoginEvent(adminID uuid.UUID, email string, locked bool) OutboxDraft {
	evtType := EventAdminLoginSucceeded
	if locked {
		evtType = EventAdminLoginLocked
	}
	payload, _ := json.Marshal(map[string]string{
		"admin_id": adminID.String(),
		"email":    email,
	})
	return OutboxDraft{
		EventID:       uuid.New(),
		AggregateType: AggregateAuth,
		AggregateID:   adminID.String(),
		EventType:     evtType,
		PartitionKey:  adminID.String(),
		Headers:       json.RawMessage(`{}`),
		Payload:       payload,
		OccurredAt:    time.Now(),
	}
}
