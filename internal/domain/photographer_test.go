package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanPhotographerTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{PhotographerStatusPending, PhotographerStatusActive, true},
		{PhotographerStatusActive, PhotographerStatusSuspended, true},
		{PhotographerStatusSuspended, PhotographerStatusActive, true},
		{PhotographerStatusPending, PhotographerStatusSuspended, false},
		{PhotographerStatusActive, PhotographerStatusPending, false},
		{PhotographerStatusSuspended, PhotographerStatusPending, false},
		{PhotographerStatusActive, PhotographerStatusActive, false},
		{"unknown", PhotographerStatusActive, false},
		{PhotographerStatusPending, "unknown", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanPhotographerTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestPhotographerActionsFor(t *testing.T) {
	assert.Equal(t, []string{"approve", "reject"}, PhotographerActionsFor(PhotographerStatusPending))
	assert.Equal(t, []string{"suspend", "edit", "delete"}, PhotographerActionsFor(PhotographerStatusActive))
	assert.Equal(t, []string{"reactivate", "delete"}, PhotographerActionsFor(PhotographerStatusSuspended))
	assert.Nil(t, PhotographerActionsFor("unknown"))
}
