//go:build integration

package testutil

import (
	"context"
	"time"
)

// CleanAll truncates all tables in reverse-dependency order. Note drafts in
// Valkey are keyed by booking UUID and expire on their own, so they are left
// alone.
func (env *TestEnv) CleanAll() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tables := []string{
		"login_attempts",
		"event_outbox",
		"booking_timeline",
		"bookings",
		"photographers",
		"admins",
	}

	for _, table := range tables {
		_, _ = env.Pool.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
	}
}
