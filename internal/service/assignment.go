package service

import (
	"context"
	"fmt"
	"time"

	"github.com/capturely/platform/internal/domain"
	"github.com/capturely/platform/internal/guard"
	"github.com/capturely/platform/internal/infra"
	"github.com/capturely/platform/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AssignmentService manages bookings and the photographer assignment
// workflow: assign, reassign, the append-only timeline, and note drafts.
type AssignmentService struct {
	pool          *pgxpool.Pool
	bookings      repository.BookingRepository
	photographers repository.PhotographerRepository
	outbox        repository.OutboxRepository
	notes         *infra.NoteStore
	submits       *guard.SubmitGuard
	available     domain.AvailabilityFunc
}

// NewAssignmentService creates a new AssignmentService. available may be nil,
// in which case the default calendar check is used: a photographer is free on
// a date when no booking is already assigned to them that day.
func NewAssignmentService(
	pool *pgxpool.Pool,
	bookings repository.BookingRepository,
	photographers repository.PhotographerRepository,
	outbox repository.OutboxRepository,
	notes *infra.NoteStore,
	submits *guard.SubmitGuard,
	available domain.AvailabilityFunc,
) *AssignmentService {
	s := &AssignmentService{
		pool:          pool,
		bookings:      bookings,
		photographers: photographers,
		outbox:        outbox,
		notes:         notes,
		submits:       submits,
		available:     available,
	}
	if s.available == nil {
		s.available = s.freeOnDate
	}
	return s
}

func (s *AssignmentService) freeOnDate(ctx context.Context, photographerID uuid.UUID, date time.Time) (bool, error) {
	n, err := s.bookings.CountAssignedOnDate(ctx, s.pool, photographerID, date.Format("2006-01-02"))
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// CreateBookingInput holds the new-booking form fields.
type CreateBookingInput struct {
	CustomerName string    `json:"customer_name"`
	EventType    string    `json:"event_type"`
	EventDate    time.Time `json:"event_date"`
	Location     string    `json:"location"`
}

// CreateBooking inserts a new unassigned booking and opens its timeline.
func (s *AssignmentService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if err := domain.ValidateName("customer name", input.CustomerName); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	if input.EventType == "" {
		return nil, domain.ErrValidation("event type is required")
	}
	if input.EventDate.IsZero() {
		return nil, domain.ErrValidation("event date is required")
	}

	now := time.Now()
	b := &domain.Booking{
		ID:           uuid.New(),
		CustomerName: input.CustomerName,
		EventType:    input.EventType,
		EventDate:    input.EventDate,
		Location:     input.Location,
		Status:       domain.BookingStatusUnassigned,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	if err := s.bookings.Create(ctx, tx, b); err != nil {
		return nil, domain.ErrInternal("create booking", err)
	}
	if err := s.bookings.AppendTimeline(ctx, tx, b.ID, "Booking created",
		fmt.Sprintf("%s booking for %s", b.EventType, b.CustomerName)); err != nil {
		return nil, domain.ErrInternal("append timeline", err)
	}
	if err := s.outbox.Insert(ctx, tx, domain.NewBookingCreatedEvent(b)); err != nil {
		return nil, domain.ErrInternal("enqueue event", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit tx", err)
	}
	return b, nil
}

// GetBooking returns one booking by ID.
func (s *AssignmentService) GetBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	b, err := s.bookings.FindByID(ctx, s.pool, id)
	if err != nil {
		return nil, domain.ErrInternal("find booking", err)
	}
	if b == nil {
		return nil, domain.ErrNotFound("booking", id.String())
	}
	return b, nil
}

// ListBookings returns all bookings ordered by event date.
func (s *AssignmentService) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	bookings, err := s.bookings.List(ctx, s.pool)
	if err != nil {
		return nil, domain.ErrInternal("list bookings", err)
	}
	return bookings, nil
}

// Assign gives an unassigned booking to a photographer. The photographer
// must be active and available on the event date. The booking row is locked
// for the duration so two admins cannot assign it concurrently.
func (s *AssignmentService) Assign(ctx context.Context, bookingID, photographerID uuid.UUID) (*domain.Booking, error) {
	return s.assign(ctx, bookingID, photographerID, false)
}

// Reassign moves an already assigned booking to a different photographer.
func (s *AssignmentService) Reassign(ctx context.Context, bookingID, photographerID uuid.UUID) (*domain.Booking, error) {
	return s.assign(ctx, bookingID, photographerID, true)
}

func (s *AssignmentService) assign(ctx context.Context, bookingID, photographerID uuid.UUID, reassign bool) (*domain.Booking, error) {
	submitKey := "booking-assign:" + bookingID.String()
	if !s.submits.Acquire(submitKey) {
		return nil, domain.ErrConflict("assignment already in progress")
	}
	defer s.submits.Release(submitKey)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	b, err := s.bookings.LockForUpdate(ctx, tx, bookingID)
	if err != nil {
		return nil, domain.ErrInternal("lock booking", err)
	}
	if b == nil {
		return nil, domain.ErrNotFound("booking", bookingID.String())
	}

	if reassign {
		if b.Status != domain.BookingStatusAssigned || b.PhotographerID == nil {
			return nil, domain.ErrConflict("booking is not assigned")
		}
		if *b.PhotographerID == photographerID {
			return nil, domain.ErrConflict("booking is already assigned to this photographer")
		}
	} else if b.Status != domain.BookingStatusUnassigned {
		return nil, domain.ErrConflict("booking is already assigned")
	}

	p, err := s.photographers.FindByID(ctx, tx, photographerID)
	if err != nil {
		return nil, domain.ErrInternal("find photographer", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound("photographer", photographerID.String())
	}
	if p.Status != domain.PhotographerStatusActive {
		return nil, domain.ErrConflict("photographer is not active")
	}

	free, err := s.available(ctx, photographerID, b.EventDate)
	if err != nil {
		return nil, domain.ErrInternal("check availability", err)
	}
	if !free {
		return nil, domain.ErrConflict("photographer is not available on the event date")
	}

	previous := b.PhotographerID
	if err := s.bookings.SetAssignment(ctx, tx, bookingID, &photographerID, domain.BookingStatusAssigned); err != nil {
		return nil, domain.ErrInternal("set assignment", err)
	}

	title := "Photographer assigned"
	description := fmt.Sprintf("Assigned to %s", p.FullName)
	if reassign {
		title = "Photographer reassigned"
		description = fmt.Sprintf("Reassigned to %s", p.FullName)
	}
	if err := s.bookings.AppendTimeline(ctx, tx, bookingID, title, description); err != nil {
		return nil, domain.ErrInternal("append timeline", err)
	}
	if err := s.outbox.Insert(ctx, tx, domain.NewBookingAssignedEvent(bookingID, photographerID, previous, reassign)); err != nil {
		return nil, domain.ErrInternal("enqueue event", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit tx", err)
	}
	b.PhotographerID = &photographerID
	b.Status = domain.BookingStatusAssigned
	return b, nil
}

// Unassign clears a booking's photographer, returning it to the pool.
func (s *AssignmentService) Unassign(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	b, err := s.bookings.LockForUpdate(ctx, tx, bookingID)
	if err != nil {
		return nil, domain.ErrInternal("lock booking", err)
	}
	if b == nil {
		return nil, domain.ErrNotFound("booking", bookingID.String())
	}
	if b.Status != domain.BookingStatusAssigned || b.PhotographerID == nil {
		return nil, domain.ErrConflict("booking is not assigned")
	}

	photographerID := *b.PhotographerID
	if err := s.bookings.SetAssignment(ctx, tx, bookingID, nil, domain.BookingStatusUnassigned); err != nil {
		return nil, domain.ErrInternal("set assignment", err)
	}
	if err := s.bookings.AppendTimeline(ctx, tx, bookingID, "Photographer unassigned", ""); err != nil {
		return nil, domain.ErrInternal("append timeline", err)
	}
	if err := s.outbox.Insert(ctx, tx, domain.NewBookingUnassignedEvent(bookingID, photographerID)); err != nil {
		return nil, domain.ErrInternal("enqueue event", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit tx", err)
	}
	b.PhotographerID = nil
	b.Status = domain.BookingStatusUnassigned
	return b, nil
}

// Timeline returns a booking's audit entries in insertion order.
func (s *AssignmentService) Timeline(ctx context.Context, bookingID uuid.UUID) ([]domain.TimelineEntry, error) {
	if _, err := s.GetBooking(ctx, bookingID); err != nil {
		return nil, err
	}
	entries, err := s.bookings.Timeline(ctx, s.pool, bookingID)
	if err != nil {
		return nil, domain.ErrInternal("fetch timeline", err)
	}
	return entries, nil
}

// Candidates returns the active photographers available on a booking's
// event date, for the assignment picker.
func (s *AssignmentService) Candidates(ctx context.Context, bookingID uuid.UUID) ([]*domain.Photographer, error) {
	b, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	active, err := s.photographers.ListByStatus(ctx, s.pool, domain.PhotographerStatusActive)
	if err != nil {
		return nil, domain.ErrInternal("list photographers", err)
	}

	candidates := make([]*domain.Photographer, 0, len(active))
	for _, p := range active {
		if b.PhotographerID != nil && *b.PhotographerID == p.ID {
			continue
		}
		free, err := s.available(ctx, p.ID, b.EventDate)
		if err != nil {
			return nil, domain.ErrInternal("check availability", err)
		}
		if free {
			candidates = append(candidates, p)
		}
	}
	return candidates, nil
}

// SaveNote stores an assignment note draft for a booking.
func (s *AssignmentService) SaveNote(ctx context.Context, bookingID uuid.UUID, note string) error {
	if _, err := s.GetBooking(ctx, bookingID); err != nil {
		return err
	}
	if err := s.notes.Save(ctx, bookingID, note); err != nil {
		return domain.ErrInternal("save note", err)
	}
	return nil
}

// LoadNote returns the saved note draft for a booking, or "".
func (s *AssignmentService) LoadNote(ctx context.Context, bookingID uuid.UUID) (string, error) {
	if _, err := s.GetBooking(ctx, bookingID); err != nil {
		return "", err
	}
	note, err := s.notes.Load(ctx, bookingID)
	if err != nil {
		return "", domain.ErrInternal("load note", err)
	}
	return note, nil
}

// CommitNote appends the note draft to the booking timeline and clears the
// draft. An empty draft is rejected.
func (s *AssignmentService) CommitNote(ctx context.Context, bookingID uuid.UUID) error {
	if _, err := s.GetBooking(ctx, bookingID); err != nil {
		return err
	}

	note, err := s.notes.Load(ctx, bookingID)
	if err != nil {
		return domain.ErrInternal("load note", err)
	}
	if note == "" {
		return domain.ErrValidation("no note draft to commit")
	}

	if err := s.bookings.AppendTimeline(ctx, s.pool, bookingID, "Note added", note); err != nil {
		return domain.ErrInternal("append timeline", err)
	}
	if err := s.notes.Clear(ctx, bookingID); err != nil {
		return domain.ErrInternal("clear note", err)
	}
	return nil
}
