package repository

import (
	"context"

	"github.com/capturely/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX abstracts pgx.Tx and pgxpool.Pool so repositories work with both.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// AdminRepository provides access to the admins table.
type AdminRepository interface {
	// FindByID returns an admin by ID, or nil when no row exists.
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Admin, error)

	// FindByEmail returns an admin by email (case-insensitive via citext).
	FindByEmail(ctx context.Context, db DBTX, email string) (*domain.Admin, error)

	// LockForUpdate acquires a row-level lock (SELECT FOR UPDATE) and returns the admin.
	LockForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Admin, error)

	// Create inserts a new admin. Unique email violations surface as
	// domain.ErrDuplicateEmail.
	Create(ctx context.Context, db DBTX, admin *domain.Admin) error

	// Update rewrites the mutable columns of an admin row.
	Update(ctx context.Context, db DBTX, admin *domain.Admin) error

	// UpdateStatus sets the status column only.
	UpdateStatus(ctx context.Context, db DBTX, id uuid.UUID, status string) error

	// RecordLogin stamps last_login.
	RecordLogin(ctx context.Context, db DBTX, id uuid.UUID) error

	// Delete removes an admin row. Returns false when no row matched.
	Delete(ctx context.Context, db DBTX, id uuid.UUID) (bool, error)

	// List returns all admins ordered by created_at then id, so listings
	// and exports are stable across calls.
	List(ctx context.Context, db DBTX) ([]*domain.Admin, error)

	// CountByStatus returns the number of admins per status.
	CountByStatus(ctx context.Context, db DBTX) (map[string]int, error)
}

// PhotographerRepository provides access to the photographers table.
type PhotographerRepository interface {
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Photographer, error)

	FindByEmail(ctx context.Context, db DBTX, email string) (*domain.Photographer, error)

	// LockForUpdate acquires a row-level lock for a status transition.
	LockForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Photographer, error)

	Create(ctx context.Context, db DBTX, p *domain.Photographer) error

	Update(ctx context.Context, db DBTX, p *domain.Photographer) error

	UpdateStatus(ctx context.Context, db DBTX, id uuid.UUID, status string) error

	Delete(ctx context.Context, db DBTX, id uuid.UUID) (bool, error)

	List(ctx context.Context, db DBTX) ([]*domain.Photographer, error)

	// ListByStatus returns photographers in a single status, same ordering
	// as List.
	ListByStatus(ctx context.Context, db DBTX, status string) ([]*domain.Photographer, error)

	CountByStatus(ctx context.Context, db DBTX) (map[string]int, error)
}

// BookingRepository provides access to bookings and booking_timeline.
type BookingRepository interface {
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Booking, error)

	// LockForUpdate acquires a row-level lock for an assignment change.
	LockForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Booking, error)

	Create(ctx context.Context, db DBTX, b *domain.Booking) error

	// SetAssignment writes photographer_id and status together.
	SetAssignment(ctx context.Context, db DBTX, id uuid.UUID, photographerID *uuid.UUID, status string) error

	List(ctx context.Context, db DBTX) ([]*domain.Booking, error)

	// ListByPhotographer returns bookings assigned to one photographer.
	ListByPhotographer(ctx context.Context, db DBTX, photographerID uuid.UUID) ([]*domain.Booking, error)

	// CountAssignedOnDate reports how many bookings a photographer already
	// holds on a calendar day. Used by the availability check.
	CountAssignedOnDate(ctx context.Context, db DBTX, photographerID uuid.UUID, date string) (int, error)

	// AppendTimeline adds one append-only audit entry to a booking.
	AppendTimeline(ctx context.Context, db DBTX, bookingID uuid.UUID, title, description string) error

	// Timeline returns a booking's entries in insertion order.
	Timeline(ctx context.Context, db DBTX, bookingID uuid.UUID) ([]domain.TimelineEntry, error)

	CountByStatus(ctx context.Context, db DBTX) (map[string]int, error)
}

// PendingEvent is one unpublished outbox row, keyed by its sequence id.
type PendingEvent struct {
	SeqID int64
	Draft domain.OutboxDraft
}

// OutboxRepository provides access to the event_outbox table.
type OutboxRepository interface {
	// Insert writes an outbox event within the same transaction as the
	// state change it describes.
	Insert(ctx context.Context, db DBTX, draft domain.OutboxDraft) error

	// FetchUnpublished returns unpublished events for the outbox poller.
	FetchUnpublished(ctx context.Context, db DBTX, limit int) ([]PendingEvent, error)

	// MarkPublished removes delivered events.
	MarkPublished(ctx context.Context, db DBTX, ids []int64) error
}
