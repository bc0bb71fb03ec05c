package service

import (
	"context"

	"github.com/capturely/platform/internal/auth"
	"github.com/capturely/platform/internal/domain"
	"github.com/capturely/platform/internal/guard"
	"github.com/capturely/platform/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles admin panel login.
type AuthService struct {
	pool   *pgxpool.Pool
	admins repository.AdminRepository
	outbox repository.OutboxRepository
	jwtMgr *auth.JWTManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	pool *pgxpool.Pool,
	admins repository.AdminRepository,
	outbox repository.OutboxRepository,
	jwtMgr *auth.JWTManager,
) *AuthService {
	return &AuthService{
		pool:   pool,
		admins: admins,
		outbox: outbox,
		jwtMgr: jwtMgr,
	}
}

// LoginInput holds the login request fields.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`

	// ClientIP is filled from the request, not the body.
	ClientIP string `json:"-"`
}

// AuthResult is returned on successful login.
type AuthResult struct {
	Token       string              `json:"token"`
	AdminID     uuid.UUID           `json:"admin_id"`
	Email       string              `json:"email"`
	FullName    string              `json:"full_name"`
	Role        domain.AdminRole    `json:"role"`
	Permissions []domain.Permission `json:"permissions"`
}

// Login authenticates an admin and returns a JWT. Accounts lock after too
// many failed attempts within the lockout window, and inactive or pending
// admins cannot log in regardless of credentials.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	if input.Password == "" {
		return nil, domain.ErrValidation("password is required")
	}

	if err := guard.CheckLocked(ctx, s.pool, input.Email, string(auth.RealmAdmin)); err != nil {
		return nil, err
	}

	admin, err := s.admins.FindByEmail(ctx, s.pool, input.Email)
	if err != nil {
		return nil, domain.ErrInternal("find admin", err)
	}
	if admin == nil {
		guard.RecordAttempt(ctx, s.pool, input.Email, string(auth.RealmAdmin), input.ClientIP, false)
		return nil, domain.ErrUnauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		guard.RecordAttempt(ctx, s.pool, input.Email, string(auth.RealmAdmin), input.ClientIP, false)
		return nil, domain.ErrUnauthorized("invalid credentials")
	}

	if admin.Status != domain.AdminStatusActive {
		guard.RecordAttempt(ctx, s.pool, input.Email, string(auth.RealmAdmin), input.ClientIP, false)
		return nil, domain.ErrForbidden("account is " + admin.Status)
	}

	guard.RecordAttempt(ctx, s.pool, input.Email, string(auth.RealmAdmin), input.ClientIP, true)
	if err := s.admins.RecordLogin(ctx, s.pool, admin.ID); err != nil {
		return nil, domain.ErrInternal("record login", err)
	}
	_ = s.outbox.Insert(ctx, s.pool, domain.NewLoginEvent(admin.ID, admin.Email, false))

	token, err := s.jwtMgr.GenerateToken(auth.RealmAdmin, admin.ID, admin.Email, string(admin.Role), input.Remember)
	if err != nil {
		return nil, domain.ErrInternal("generate token", err)
	}

	return &AuthResult{
		Token:       token,
		AdminID:     admin.ID,
		Email:       admin.Email,
		FullName:    admin.FullName,
		Role:        admin.Role,
		Permissions: domain.PermissionsFor(admin.Role),
	}, nil
}
