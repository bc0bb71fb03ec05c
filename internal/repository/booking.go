package repository

import (
	"context"
	"fmt"

	"github.com/capturely/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingColumns = `id, customer_name, event_type, event_date, location, status,
	photographer_id, created_at, updated_at`

type bookingRepo struct{}

// NewBookingRepository returns a pgx-backed BookingRepository.
func NewBookingRepository() BookingRepository {
	return &bookingRepo{}
}

func (r *bookingRepo) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Booking, error) {
	row := db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	return scanBooking(row)
}

func (r *bookingRepo) LockForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Booking, error) {
	row := tx.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id)
	return scanBooking(row)
}

func (r *bookingRepo) Create(ctx context.Context, db DBTX, b *domain.Booking) error {
	_, err := db.Exec(ctx, `
		INSERT INTO bookings (id, customer_name, event_type, event_date, location, status,
			photographer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		b.ID,
		b.CustomerName,
		b.EventType,
		b.EventDate,
		b.Location,
		b.Status,
		b.PhotographerID,
		b.CreatedAt,
		b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *bookingRepo) SetAssignment(ctx context.Context, db DBTX, id uuid.UUID, photographerID *uuid.UUID, status string) error {
	_, err := db.Exec(ctx, `
		UPDATE bookings SET photographer_id = $2, status = $3, updated_at = now()
		WHERE id = $1`, id, photographerID, status)
	if err != nil {
		return fmt.Errorf("set booking assignment: %w", err)
	}
	return nil
}

func (r *bookingRepo) List(ctx context.Context, db DBTX) ([]*domain.Booking, error) {
	rows, err := db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY event_date, id`)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return collectBookings(rows)
}

func (r *bookingRepo) ListByPhotographer(ctx context.Context, db DBTX, photographerID uuid.UUID) ([]*domain.Booking, error) {
	rows, err := db.Query(ctx, `
		SELECT `+bookingColumns+` FROM bookings
		WHERE photographer_id = $1 ORDER BY event_date, id`, photographerID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by photographer: %w", err)
	}
	return collectBookings(rows)
}

func (r *bookingRepo) CountAssignedOnDate(ctx context.Context, db DBTX, photographerID uuid.UUID, date string) (int, error) {
	var n int
	err := db.QueryRow(ctx, `
		SELECT count(*) FROM bookings
		WHERE photographer_id = $1 AND event_date::date = $2::date`,
		photographerID, date).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count assigned bookings: %w", err)
	}
	return n, nil
}

func (r *bookingRepo) AppendTimeline(ctx context.Context, db DBTX, bookingID uuid.UUID, title, description string) error {
	_, err := db.Exec(ctx, `
		INSERT INTO booking_timeline (booking_id, title, description, created_at)
		VALUES ($1, $2, $3, now())`, bookingID, title, description)
	if err != nil {
		return fmt.Errorf("append timeline entry: %w", err)
	}
	return nil
}

func (r *bookingRepo) Timeline(ctx context.Context, db DBTX, bookingID uuid.UUID) ([]domain.TimelineEntry, error) {
	rows, err := db.Query(ctx, `
		SELECT seq_id, booking_id, title, description, created_at
		FROM booking_timeline WHERE booking_id = $1 ORDER BY seq_id`, bookingID)
	if err != nil {
		return nil, fmt.Errorf("fetch timeline: %w", err)
	}
	defer rows.Close()

	var entries []domain.TimelineEntry
	for rows.Next() {
		var e domain.TimelineEntry
		if err := rows.Scan(&e.SeqID, &e.BookingID, &e.Title, &e.Description, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan timeline entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *bookingRepo) CountByStatus(ctx context.Context, db DBTX) (map[string]int, error) {
	return countByStatus(ctx, db, "bookings")
}

func collectBookings(rows pgx.Rows) ([]*domain.Booking, error) {
	defer rows.Close()
	var bookings []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(&b.ID, &b.CustomerName, &b.EventType, &b.EventDate, &b.Location,
		&b.Status, &b.PhotographerID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	return &b, nil
}
