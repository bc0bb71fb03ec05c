package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Booking assignment states.
const (
	BookingStatusUnassigned = "unassigned"
	BookingStatusAssigned   = "assigned"
)

// Booking represents a bookings row. PhotographerID is nil while the
// booking is unassigned.
type Booking struct {
	ID             uuid.UUID  `json:"id"`
	CustomerName   string     `json:"customer_name"`
	EventType      string     `json:"event_type"`
	EventDate      time.Time  `json:"event_date"`
	Location       string     `json:"location,omitempty"`
	Status         string     `json:"status"`
	PhotographerID *uuid.UUID `json:"photographer_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TimelineEntry is one append-only audit line on a booking. Entries are
// never reordered or pruned.
type TimelineEntry struct {
	SeqID       int64     `json:"seq_id"`
	BookingID   uuid.UUID `json:"booking_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// AvailabilityFunc decides whether a photographer can take a booking on the
// given date. Implementations are injected so tests can substitute fixed
// calendars.
type AvailabilityFunc func(ctx context.Context, photographerID uuid.UUID, date time.Time) (bool, error)
