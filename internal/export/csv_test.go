package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capturely/platform/internal/domain"
)

func TestAdminsCSV(t *testing.T) {
	admins := []*domain.Admin{
		{FullName: "Sarah Mitchell", Email: "sarah@capturely.com", Mobile: "+4915123456789", Role: domain.RoleSuperAdmin, Status: domain.AdminStatusActive},
		{FullName: "Tom Weiss", Email: "tom@capturely.com", Mobile: "0151 234 5678", Role: domain.RoleModerator, Status: domain.AdminStatusPending},
	}

	out := AdminsCSV(admins)

	assert.True(t, strings.HasPrefix(out, `"Name","Email","Phone","Role","Status"`))
	assert.Contains(t, out, `"Sarah Mitchell","sarah@capturely.com","+4915123456789","super_admin","active"`)

	records := parseCSV(t, out)
	require.Len(t, records, 3)
	assert.Equal(t, AdminHeaders, records[0])
	assert.Equal(t, []string{"Tom Weiss", "tom@capturely.com", "0151 234 5678", "moderator", "pending"}, records[2])
}

func TestPhotographersCSV(t *testing.T) {
	rating := 4.8
	photographers := []*domain.Photographer{
		{FullName: "Elena Petrova", Email: "elena@studio.example", Mobile: "015112345678", Specialization: "Wedding", Rating: &rating, Status: domain.PhotographerStatusActive, Location: "Berlin"},
		{FullName: "New Applicant", Email: "new@studio.example", Mobile: "015187654321", Specialization: "Event", Status: domain.PhotographerStatusPending, Location: "Munich"},
	}

	out := PhotographersCSV(photographers)
	records := parseCSV(t, out)
	require.Len(t, records, 3)
	assert.Equal(t, PhotographerHeaders, records[0])
	assert.Equal(t, []string{"Elena Petrova", "elena@studio.example", "015112345678", "Wedding", "4.8", "active", "Berlin"}, records[1])

	// Unrated photographers export an empty rating cell.
	assert.Equal(t, "", records[2][4])
}

func TestCSVQuotingSurvivesHostileFields(t *testing.T) {
	admins := []*domain.Admin{
		{FullName: `Quote "Master"`, Email: "q@capturely.com", Mobile: "one,two", Role: domain.RoleAdmin, Status: "line\nbreak"},
	}

	out := AdminsCSV(admins)
	records := parseCSV(t, out)
	require.Len(t, records, 2)
	assert.Equal(t, `Quote "Master"`, records[1][0])
	assert.Equal(t, "one,two", records[1][2])
	assert.Equal(t, "line\nbreak", records[1][4])
}

func TestEveryFieldIsQuoted(t *testing.T) {
	out := AdminsCSV(nil)
	line := strings.TrimSuffix(out, "\n")
	for _, cell := range strings.Split(line, ",") {
		assert.True(t, strings.HasPrefix(cell, `"`), "cell %q not quoted", cell)
		assert.True(t, strings.HasSuffix(cell, `"`), "cell %q not quoted", cell)
	}
}

func TestFileName(t *testing.T) {
	date := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "admins_2026-08-31.csv", FileName("admins", date))
	assert.Equal(t, "photographers_2026-08-31.csv", FileName("photographers", date))
}

func parseCSV(t *testing.T, doc string) [][]string {
	t.Helper()
	r := csv.NewReader(strings.NewReader(doc))
	records, err := r.ReadAll()
	require.NoError(t, err)
	return records
}
