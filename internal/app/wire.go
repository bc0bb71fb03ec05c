package app

import (
	"log/slog"

	"github.com/capturely/platform/internal/auth"
	"github.com/capturely/platform/internal/domain"
	"github.com/capturely/platform/internal/guard"
	"github.com/capturely/platform/internal/handler"
	adminhandler "github.com/capturely/platform/internal/handler/admin"
	"github.com/capturely/platform/internal/infra"
	"github.com/capturely/platform/internal/repository"
	"github.com/capturely/platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RouterDeps holds all dependencies needed by NewRouter.
type RouterDeps struct {
	Pool               *pgxpool.Pool
	JWTMgr             *auth.JWTManager
	Logger             *slog.Logger
	Notes              *infra.NoteStore
	CORSAllowedOrigins string
	// Available overrides the photographer availability check. Nil uses
	// the default one-booking-per-day rule.
	Available domain.AvailabilityFunc
}

// NewRouter assembles the chi.Router with all routes and middleware.
func NewRouter(deps RouterDeps) chi.Router {
	pool := deps.Pool
	jwtMgr := deps.JWTMgr
	logger := deps.Logger

	submits := guard.NewSubmitGuard()

	// Repositories
	adminRepo := repository.NewAdminRepository()
	photographerRepo := repository.NewPhotographerRepository()
	bookingRepo := repository.NewBookingRepository()
	outboxRepo := repository.NewOutboxRepository()

	// Services
	authSvc := service.NewAuthService(pool, adminRepo, outboxRepo, jwtMgr)
	adminSvc := service.NewAdminService(pool, adminRepo, outboxRepo, submits)
	photographerSvc := service.NewPhotographerService(pool, photographerRepo, bookingRepo, outboxRepo, submits)
	assignmentSvc := service.NewAssignmentService(pool, bookingRepo, photographerRepo, outboxRepo, deps.Notes, submits, deps.Available)
	reportsSvc := service.NewReportsService(pool, adminRepo, photographerRepo, bookingRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	adminsHandler := adminhandler.NewAdminsHandler(adminSvc)
	photographersHandler := adminhandler.NewPhotographersHandler(photographerSvc)
	assignmentsHandler := adminhandler.NewAssignmentsHandler(assignmentSvc)
	reportsHandler := adminhandler.NewReportsHandler(reportsSvc)

	// Router
	r := chi.NewRouter()

	// Global middleware (order matters)
	r.Use(handler.Recovery(logger))
	r.Use(handler.RequestID)
	r.Use(handler.RequestLogger(logger))
	r.Use(handler.CORSWithOrigins(deps.CORSAllowedOrigins))
	r.Use(handler.JSONContentType)

	// Health (no auth)
	r.Get("/health", handler.HealthHandler(pool))

	// Auth routes (no auth)
	r.Post("/auth/login", authHandler.Login)

	// Admin-authenticated routes
	r.Route("/admin", func(r chi.Router) {
		r.Use(auth.AuthenticateAdmin(jwtMgr))

		r.Route("/admins", func(r chi.Router) {
			r.Use(auth.RequirePermission(domain.PermManageAdmins))
			r.Get("/", adminsHandler.List)
			r.Post("/", adminsHandler.Create)
			r.Get("/export", adminsHandler.Export)
			r.Get("/{id}", adminsHandler.Get)
			r.Put("/{id}", adminsHandler.Update)
			r.Patch("/{id}/status", adminsHandler.UpdateStatus)
			r.Delete("/{id}", adminsHandler.Delete)
		})

		r.Route("/photographers", func(r chi.Router) {
			r.Use(auth.RequirePermission(domain.PermManagePhotographers))
			r.Get("/", photographersHandler.List)
			r.Post("/", photographersHandler.Create)
			r.Get("/export", photographersHandler.Export)
			r.Get("/{id}", photographersHandler.Get)
			r.Put("/{id}", photographersHandler.Update)
			r.Patch("/{id}/status", photographersHandler.UpdateStatus)
			r.Post("/{id}/reject", photographersHandler.Reject)
			r.Delete("/{id}", photographersHandler.Delete)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Use(auth.RequirePermission(domain.PermAssignPhotographers))
			r.Get("/", assignmentsHandler.List)
			r.Post("/", assignmentsHandler.Create)
			r.Get("/{id}", assignmentsHandler.Get)
			r.Post("/{id}/assign", assignmentsHandler.Assign)
			r.Post("/{id}/reassign", assignmentsHandler.Reassign)
			r.Post("/{id}/unassign", assignmentsHandler.Unassign)
			r.Get("/{id}/timeline", assignmentsHandler.Timeline)
			r.Get("/{id}/candidates", assignmentsHandler.Candidates)
			r.Get("/{id}/note", assignmentsHandler.GetNote)
			r.Put("/{id}/note", assignmentsHandler.SaveNote)
			r.Post("/{id}/note/commit", assignmentsHandler.CommitNote)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Use(auth.RequirePermission(domain.PermViewReports))
			r.Get("/dashboard", reportsHandler.Dashboard)
		})
	})

	return r
}
