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
	"golang.org/x/crypto/bcrypt"
)

// AdminService manages admin panel accounts.
type AdminService struct {
	pool    *pgxpool.Pool
	admins  repository.AdminRepository
	outbox  repository.OutboxRepository
	submits *guard.SubmitGuard
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	pool *pgxpool.Pool,
	admins repository.AdminRepository,
	outbox repository.OutboxRepository,
	submits *guard.SubmitGuard,
) *AdminService {
	return &AdminService{
		pool:    pool,
		admins:  admins,
		outbox:  outbox,
		submits: submits,
	}
}

// CreateAdminInput holds the new-admin form fields.
type CreateAdminInput struct {
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	Email      string           `json:"email"`
	Mobile     string           `json:"mobile"`
	Role       domain.AdminRole `json:"role"`
	Department string           `json:"department"`
	StartDate  time.Time        `json:"start_date"`
	Notes      string           `json:"notes"`
	Password   string           `json:"password"`
}

// trim strips surrounding whitespace from the form fields before validation,
// so a padded name is stored clean and a padded email still passes the email
// regex. The password is left untouched.
func (in *CreateAdminInput) trim() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.Mobile = strings.TrimSpace(in.Mobile)
	in.Department = strings.TrimSpace(in.Department)
	in.Notes = strings.TrimSpace(in.Notes)
}

func (in CreateAdminInput) validate() error {
	if err := domain.ValidateName("first name", in.FirstName); err != nil {
		return err
	}
	if err := domain.ValidateName("last name", in.LastName); err != nil {
		return err
	}
	if err := domain.ValidateEmail(in.Email); err != nil {
		return err
	}
	if err := domain.ValidateMobile(in.Mobile); err != nil {
		return err
	}
	if !domain.IsValidRole(in.Role) {
		return errors.New("invalid role")
	}
	if len(in.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

// Create inserts a new admin in pending status. Permissions are derived from
// the role, never taken from the request. Concurrent duplicate submissions of
// the same email are suppressed by the submit guard, and a losing race still
// surfaces as DUPLICATE_EMAIL via the unique index.
func (s *AdminService) Create(ctx context.Context, input CreateAdminInput) (*domain.Admin, error) {
	input.trim()
	if err := input.validate(); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	submitKey := "admin-create:" + input.Email
	if !s.submits.Acquire(submitKey) {
		return nil, domain.ErrConflict("submission already in progress")
	}
	defer s.submits.Release(submitKey)

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.ErrInternal("hash password", err)
	}

	now := time.Now()
	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = now
	}

	admin := &domain.Admin{
		ID:           uuid.New(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		FullName:     input.FirstName + " " + input.LastName,
		Email:        input.Email,
		Mobile:       input.Mobile,
		Role:         input.Role,
		Department:   input.Department,
		StartDate:    startDate,
		Status:       domain.AdminStatusPending,
		Notes:        input.Notes,
		Permissions:  domain.PermissionsFor(input.Role),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	if err := s.admins.Create(ctx, tx, admin); err != nil {
		var appErr *domain.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, domain.ErrInternal("create admin", err)
	}
	if err := s.outbox.Insert(ctx, tx, domain.NewAdminCreatedEvent(admin)); err != nil {
		return nil, domain.ErrInternal("enqueue event", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit tx", err)
	}
	return admin, nil
}

// Get returns one admin by ID.
func (s *AdminService) Get(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	admin, err := s.admins.FindByID(ctx, s.pool, id)
	if err != nil {
		return nil, domain.ErrInternal("find admin", err)
	}
	if admin == nil {
		return nil, domain.ErrNotFound("admin", id.String())
	}
	return admin, nil
}

// List returns admins matching the filter, in creation order.
func (s *AdminService) List(ctx context.Context, filter domain.AdminFilter) ([]*domain.Admin, error) {
	admins, err := s.admins.List(ctx, s.pool)
	if err != nil {
		return nil, domain.ErrInternal("list admins", err)
	}
	return domain.VisibleAdmins(admins, filter), nil
}

// UpdateAdminInput holds the editable admin fields.
type UpdateAdminInput struct {
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	Email      string           `json:"email"`
	Mobile     string           `json:"mobile"`
	Role       domain.AdminRole `json:"role"`
	Department string           `json:"department"`
	StartDate  time.Time        `json:"start_date"`
	Notes      string           `json:"notes"`
}

func (in *UpdateAdminInput) trim() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.Mobile = strings.TrimSpace(in.Mobile)
	in.Department = strings.TrimSpace(in.Department)
	in.Notes = strings.TrimSpace(in.Notes)
}

// Update edits an admin's profile. Changing the role of a super_admin is
// rejected, and a role change rewrites the stored permission set from the
// new role.
func (s *AdminService) Update(ctx context.Context, id uuid.UUID, input UpdateAdminInput) (*domain.Admin, error) {
	input.trim()
	if err := domain.ValidateName("first name", input.FirstName); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	if err := domain.ValidateName("last name", input.LastName); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	if err := domain.ValidateMobile(input.Mobile); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	if !domain.IsValidRole(input.Role) {
		return nil, domain.ErrValidation("invalid role")
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	admin, err := s.admins.LockForUpdate(ctx, tx, id)
	if err != nil {
		return nil, domain.ErrInternal("lock admin", err)
	}
	if admin == nil {
		return nil, domain.ErrNotFound("admin", id.String())
	}
	if input.Role != admin.Role && !domain.RoleEditable(admin.Role) {
		return nil, domain.ErrForbidden("super_admin role cannot be changed")
	}

	admin.FirstName = input.FirstName
	admin.LastName = input.LastName
	admin.FullName = input.FirstName + " " + input.LastName
	admin.Email = input.Email
	admin.Mobile = input.Mobile
	admin.Department = input.Department
	admin.Notes = input.Notes
	if !input.StartDate.IsZero() {
		admin.StartDate = input.StartDate
	}
	if input.Role != admin.Role {
		admin.Role = input.Role
		admin.Permissions = domain.PermissionsFor(input.Role)
	}

	if err := s.admins.Update(ctx, tx, admin); err != nil {
		var appErr *domain.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, domain.ErrInternal("update admin", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit tx", err)
	}
	return admin, nil
}

// SetStatus moves an admin along the status state machine under a row lock,
// so two concurrent toggles cannot both succeed from the same starting state.
func (s *AdminService) SetStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Admin, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	admin, err := s.admins.LockForUpdate(ctx, tx, id)
	if err != nil {
		return nil, domain.ErrInternal("lock admin", err)
	}
	if admin == nil {
		return nil, domain.ErrNotFound("admin", id.String())
	}
	if !domain.CanAdminTransition(admin.Status, status) {
		return nil, domain.ErrInvalidTransition("admin", admin.Status, status)
	}

	previous := admin.Status
	if err := s.admins.UpdateStatus(ctx, tx, id, status); err != nil {
		return nil, domain.ErrInternal("update status", err)
	}
	if err := s.outbox.Insert(ctx, tx, domain.NewAdminStatusChangedEvent(id, previous, status)); err != nil {
		return nil, domain.ErrInternal("enqueue event", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit tx", err)
	}
	admin.Status = status
	return admin, nil
}

// Delete removes an admin. super_admin accounts cannot be deleted.
func (s *AdminService) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	admin, err := s.admins.LockForUpdate(ctx, tx, id)
	if err != nil {
		return domain.ErrInternal("lock admin", err)
	}
	if admin == nil {
		return domain.ErrNotFound("admin", id.String())
	}
	if !domain.RoleEditable(admin.Role) {
		return domain.ErrForbidden("super_admin accounts cannot be deleted")
	}

	if _, err := s.admins.Delete(ctx, tx, id); err != nil {
		return domain.ErrInternal("delete admin", err)
	}
	if err := s.outbox.Insert(ctx, tx, domain.NewAdminDeletedEvent(id, admin.Email)); err != nil {
		return domain.ErrInternal("enqueue event", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.ErrInternal("commit tx", err)
	}
	return nil
}

// ExportCSV renders the filtered admin listing as a CSV download.
func (s *AdminService) ExportCSV(ctx context.Context, filter domain.AdminFilter) (filename, body string, err error) {
	admins, err := s.List(ctx, filter)
	if err != nil {
		return "", "", err
	}
	return export.FileName("admins", time.Now()), export.AdminsCSV(admins), nil
}
