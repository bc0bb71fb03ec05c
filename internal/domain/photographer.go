package domain

import (
	"time"

	"github.com/google/uuid"
)

// Photographer status values. Photographers are created pending and either
// approved into active or rejected (deleted). Active photographers can be
// suspended and later reactivated.
const (
	PhotographerStatusPending   = "pending"
	PhotographerStatusActive    = "active"
	PhotographerStatusSuspended = "suspended"
)

// photographerTransitions holds the valid status edges. Rejection and
// deletion remove the row outright and are not status updates.
var photographerTransitions = map[string][]string{
	PhotographerStatusPending:   {PhotographerStatusActive},
	PhotographerStatusActive:    {PhotographerStatusSuspended},
	PhotographerStatusSuspended: {PhotographerStatusActive},
}

// CanPhotographerTransition reports whether from → to is a valid edge.
func CanPhotographerTransition(from, to string) bool {
	for _, next := range photographerTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// PhotographerActionsFor returns the action set offered for a status:
// the valid next transitions plus edit/delete where applicable.
func PhotographerActionsFor(status string) []string {
	switch status {
	case PhotographerStatusPending:
		return []string{"approve", "reject"}
	case PhotographerStatusActive:
		return []string{"suspend", "edit", "delete"}
	case PhotographerStatusSuspended:
		return []string{"reactivate", "delete"}
	}
	return nil
}

// Experience bounds for photographers, in years.
const (
	MinExperienceYears = 0
	MaxExperienceYears = 50
)

// Photographer represents a photographers row. Rating is nil until the
// photographer has completed a rated booking.
type Photographer struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Mobile          string    `json:"mobile"`
	HiredDate       time.Time `json:"hired_date"`
	ExperienceYears int       `json:"experience_years"`
	Specialization  string    `json:"specialization"`
	Location        string    `json:"location"`
	PortfolioURL    string    `json:"portfolio_url,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	Equipment       string    `json:"equipment,omitempty"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	Rating          *float64  `json:"rating,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
