package service

import (
	"context"

	"github.com/capturely/platform/internal/domain"
	"github.com/capturely/platform/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportsService aggregates the dashboard counters.
type ReportsService struct {
	pool          *pgxpool.Pool
	admins        repository.AdminRepository
	photographers repository.PhotographerRepository
	bookings      repository.BookingRepository
}

// NewReportsService creates a new ReportsService.
func NewReportsService(
	pool *pgxpool.Pool,
	admins repository.AdminRepository,
	photographers repository.PhotographerRepository,
	bookings repository.BookingRepository,
) *ReportsService {
	return &ReportsService{
		pool:          pool,
		admins:        admins,
		photographers: photographers,
		bookings:      bookings,
	}
}

// DashboardStats holds the headline numbers shown on the admin dashboard.
type DashboardStats struct {
	TotalAdmins           int            `json:"total_admins"`
	AdminsByStatus        map[string]int `json:"admins_by_status"`
	TotalPhotographers    int            `json:"total_photographers"`
	PhotographersByStatus map[string]int `json:"photographers_by_status"`
	PendingApplications   int            `json:"pending_applications"`
	TotalBookings         int            `json:"total_bookings"`
	UnassignedBookings    int            `json:"unassigned_bookings"`
	AssignedBookings      int            `json:"assigned_bookings"`
}

// Dashboard collects per-table status counts into one response.
func (s *ReportsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	adminCounts, err := s.admins.CountByStatus(ctx, s.pool)
	if err != nil {
		return nil, domain.ErrInternal("count admins", err)
	}
	photographerCounts, err := s.photographers.CountByStatus(ctx, s.pool)
	if err != nil {
		return nil, domain.ErrInternal("count photographers", err)
	}
	bookingCounts, err := s.bookings.CountByStatus(ctx, s.pool)
	if err != nil {
		return nil, domain.ErrInternal("count bookings", err)
	}

	stats := &DashboardStats{
		AdminsByStatus:        adminCounts,
		PhotographersByStatus: photographerCounts,
		PendingApplications:   photographerCounts[domain.PhotographerStatusPending],
		UnassignedBookings:    bookingCounts[domain.BookingStatusUnassigned],
		AssignedBookings:      bookingCounts[domain.BookingStatusAssigned],
	}
	for _, n := range adminCounts {
		stats.TotalAdmins += n
	}
	for _, n := range photographerCounts {
		stats.TotalPhotographers += n
	}
	for _, n := range bookingCounts {
		stats.TotalBookings += n
	}
	return stats, nil
}
