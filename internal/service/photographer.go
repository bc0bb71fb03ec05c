package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/capturely/platform/internal/domain"
	"github.com/capturely/platform/internal/export"
	"github.com/capturely/platform/internal/guard"
	"github.com/capturely/platform/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PhotographerService manages photographer profiles and their moderation
// lifecycle.
type PhotographerService struct {
	pool          *pgxpool.Pool
	photographers repository.PhotographerRepository
	bookings      repository.BookingRepository
	outbox        repository.OutboxRepository
	submits       *guard.SubmitGuard
}

// NewPhotographerService creates a new PhotographerService.
func NewPhotographerService(
	pool *pgxpool.Pool,
	photographers repository.PhotographerRepository,
	bookings repository.BookingRepository,
	outbox repository.OutboxRepository,
	submits *guard.SubmitGuard,
) *PhotographerService {
	return &PhotographerService{
		pool:          pool,
		photographers: photographers,
		bookings:      bookings,
		outbox:        outbox,
		submits:       submits,
	}
}

// PhotographerInput holds the photographer form fields, shared by create
// and edit.
type PhotographerInput struct {
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Mobile          string    `json:"mobile"`
	HiredDate       time.Time `json:"hired_date"`
	ExperienceYears int       `json:"experience_years"`
	Specialization  string    `json:"specialization"`
	Location        string    `json:"location"`
	PortfolioURL    string    `json:"portfolio_url"`
	Bio             string    `json:"bio"`
	Equipment       string    `json:"equipment"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
}

// trim strips surrounding whitespace from the form fields before validation.
func (in *PhotographerInput) trim() {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.Mobile = strings.TrimSpace(in.Mobile)
	in.Specialization = strings.TrimSpace(in.Specialization)
	in.Location = strings.TrimSpace(in.Location)
	in.PortfolioURL = strings.TrimSpace(in.PortfolioURL)
	in.Bio = strings.TrimSpace(in.Bio)
	in.Equipment = strings.TrimSpace(in.Equipment)
}

func (in PhotographerInput) validate() error {
	if err := domain.ValidateName("full name", in.FullName); err != nil {
		return err
	}
	if err := domain.ValidateEmail(in.Email); err != nil {
		return err
	}
	if err := domain.ValidateMobile(in.Mobile); err != nil {
		return err
	}
	if err := domain.ValidateExperience(in.ExperienceYears); err != nil {
		return err
	}
	if err := domain.ValidatePortfolioURL(in.PortfolioURL); err != nil {
		return err
	}
	if err := domain.ValidateHourlyRate(in.HourlyRateCents); err != nil {
		return err
	}
	if in.Specialization == "" {
		return errors.New("specialization is required")
	}
	return nil
}

// Create registers a photographer in pending status, awaiting approval.
func (s *PhotographerService) Create(ctx context.Context, input PhotographerInput) (*domain.Photographer, error) {
	input.trim()
	if err := input.validate(); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	submitKey := "photographer-create:" + input.Email
	if !s.submits.Acquire(submitKey) {
		return nil, domain.ErrConflict("submission already in progress")
	}
	defer s.submits.Release(submitKey)

	now := time.Now()
	hiredDate := input.HiredDate
	if hiredDate.IsZero() {
		hiredDate = now
	}

	p := &domain.Photographer{
		ID:              uuid.New(),
		FullName:        input.FullName,
		Email:           input.Email,
		Mobile:          input.Mobile,
		HiredDate:       hiredDate,
		ExperienceYears: input.ExperienceYears,
		Specialization:  input.Specialization,
		Location:        input.Location,
		PortfolioURL:    input.PortfolioURL,
		Bio:             input.Bio,
		Equipment:       input.Equipment,
		HourlyRateCents: input.HourlyRateCents,
		Status:          domain.PhotographerStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	if err := s.photographers.Create(ctx, tx, p); err != nil {
		var appErr *domain.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, domain.ErrInternal("create photographer", err)
	}
	if err := s.outbox.Insert(ctx, tx, domain.NewPhotographerCreatedEvent(p)); err != nil {
		return nil, domain.ErrInternal("enqueue event", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit tx", err)
	}
	return p, nil
}

// Get returns one photographer by ID.
func (s *PhotographerService) Get(ctx context.Context, id uuid.UUID) (*domain.Photographer, error) {
	p, err := s.photographers.FindByID(ctx, s.pool, id)
	if err != nil {
		return nil, domain.ErrInternal("find photographer", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound("photographer", id.String())
	}
	return p, nil
}

// List returns photographers matching the filter, in creation order.
func (s *PhotographerService) List(ctx context.Context, filter domain.PhotographerFilter) ([]*domain.Photographer, error) {
	photographers, err := s.photographers.List(ctx, s.pool)
	if err != nil {
		return nil, domain.ErrInternal("list photographers", err)
	}
	return domain.VisiblePhotographers(photographers, filter), nil
}

// Update edits a photographer's profile. Only active photographers can be
// edited, matching the action set offered per status.
func (s *PhotographerService) Update(ctx context.Context, id uuid.UUID, input PhotographerInput) (*domain.Photographer, error) {
	input.trim()
	if err := input.validate(); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	p, err := s.photographers.LockForUpdate(ctx, tx, id)
	if err != nil {
		return nil, domain.ErrInternal("lock photographer", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound("photographer", id.String())
	}
	if p.Status != domain.PhotographerStatusActive {
		return nil, domain.ErrConflict("only active photographers can be edited")
	}

	p.FullName = input.FullName
	p.Email = input.Email
	p.Mobile = input.Mobile
	if !input.HiredDate.IsZero() {
		p.HiredDate = input.HiredDate
	}
	p.ExperienceYears = input.ExperienceYears
	p.Specialization = input.Specialization
	p.Location = input.Location
	p.PortfolioURL = input.PortfolioURL
	p.Bio = input.Bio
	p.Equipment = input.Equipment
	p.HourlyRateCents = input.HourlyRateCents

	if err := s.photographers.Update(ctx, tx, p); err != nil {
		var appErr *domain.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, domain.ErrInternal("update photographer", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit tx", err)
	}
	return p, nil
}

// Transition moves a photographer along the status state machine under a
// row lock. Approve is pending to active, suspend is active to suspended,
// reactivate is suspended to active.
func (s *PhotographerService) Transition(ctx context.Context, id uuid.UUID, status string) (*domain.Photographer, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	p, err := s.photographers.LockForUpdate(ctx, tx, id)
	if err != nil {
		return nil, domain.ErrInternal("lock photographer", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound("photographer", id.String())
	}
	if !domain.CanPhotographerTransition(p.Status, status) {
		return nil, domain.ErrInvalidTransition("photographer", p.Status, status)
	}

	previous := p.Status
	if err := s.photographers.UpdateStatus(ctx, tx, id, status); err != nil {
		return nil, domain.ErrInternal("update status", err)
	}
	if err := s.outbox.Insert(ctx, tx, domain.NewPhotographerStatusChangedEvent(id, previous, status)); err != nil {
		return nil, domain.ErrInternal("enqueue event", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit tx", err)
	}
	p.Status = status
	return p, nil
}

// Reject removes a pending application outright.
func (s *PhotographerService) Reject(ctx context.Context, id uuid.UUID, reason string) error {
	return s.remove(ctx, id, true, reason, func(p *domain.Photographer) error {
		if p.Status != domain.PhotographerStatusPending {
			return domain.ErrConflict("only pending applications can be rejected")
		}
		return nil
	})
}

// Delete removes a photographer profile. Pending applications go through
// Reject instead, and photographers with assigned bookings cannot be
// deleted until those bookings are reassigned.
func (s *PhotographerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.remove(ctx, id, false, "profile deleted", func(p *domain.Photographer) error {
		if p.Status == domain.PhotographerStatusPending {
			return domain.ErrConflict("pending applications are rejected, not deleted")
		}
		return nil
	})
}

func (s *PhotographerService) remove(ctx context.Context, id uuid.UUID, rejected bool, reason string, check func(*domain.Photographer) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	p, err := s.photographers.LockForUpdate(ctx, tx, id)
	if err != nil {
		return domain.ErrInternal("lock photographer", err)
	}
	if p == nil {
		return domain.ErrNotFound("photographer", id.String())
	}
	if err := check(p); err != nil {
		return err
	}

	assigned, err := s.bookings.ListByPhotographer(ctx, tx, id)
	if err != nil {
		return domain.ErrInternal("list assigned bookings", err)
	}
	if len(assigned) > 0 {
		return domain.ErrConflict("photographer has assigned bookings; reassign them first")
	}

	if _, err := s.photographers.Delete(ctx, tx, id); err != nil {
		return domain.ErrInternal("delete photographer", err)
	}
	if err := s.outbox.Insert(ctx, tx, domain.NewPhotographerRemovedEvent(id, rejected, reason)); err != nil {
		return domain.ErrInternal("enqueue event", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.ErrInternal("commit tx", err)
	}
	return nil
}

// ExportCSV renders the filtered photographer listing as a CSV download.
func (s *PhotographerService) ExportCSV(ctx context.Context, filter domain.PhotographerFilter) (filename, body string, err error) {
	photographers, err := s.List(ctx, filter)
	if err != nil {
		return "", "", err
	}
	return export.FileName("photographers", time.Now()), export.PhotographersCSV(photographers), nil
}
