package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratingOf(v float64) *float64 { return &v }

func testAdmins() []*Admin {
	return []*Admin{
		{FullName: "Sarah Mitchell", Email: "sarah@capturely.com", Mobile: "+49 151 0771234", Role: RoleSuperAdmin, Status: AdminStatusActive},
		{FullName: "David Okafor", Email: "david@capturely.com", Mobile: "+49 151 5550002", Role: RoleAdmin, Status: AdminStatusActive},
		{FullName: "Priya Raman", Email: "priya@capturely.com", Mobile: "+49 151 5550003", Role: RoleManager, Status: AdminStatusInactive},
		{FullName: "Tom Weiss", Email: "tom@capturely.com", Mobile: "+49 151 5550004", Role: RoleModerator, Status: AdminStatusPending},
	}
}

func testPhotographers() []*Photographer {
	return []*Photographer{
		{FullName: "Elena Petrova", Email: "elena@studio.example", Mobile: "+49 151 8880001", Specialization: "Wedding", Location: "Berlin", Status: PhotographerStatusActive, Rating: ratingOf(4.8)},
		{FullName: "Marcus Lee", Email: "marcus@studio.example", Mobile: "+49 151 8880002", Specialization: "Portrait", Location: "Hamburg", Status: PhotographerStatusActive, Rating: ratingOf(3.9)},
		{FullName: "Aiko Tanaka", Email: "aiko@studio.example", Mobile: "+49 151 8880003", Specialization: "Wedding", Location: "Berlin", Status: PhotographerStatusSuspended, Rating: ratingOf(4.2)},
		{FullName: "New Applicant", Email: "new@studio.example", Mobile: "+49 151 8880004", Specialization: "Event", Location: "Munich", Status: PhotographerStatusPending},
	}
}

func TestVisibleAdminsEmptyFilterMatchesAll(t *testing.T) {
	admins := testAdmins()
	got := VisibleAdmins(admins, AdminFilter{})
	assert.Equal(t, admins, got)
}

func TestVisibleAdminsByStatus(t *testing.T) {
	got := VisibleAdmins(testAdmins(), AdminFilter{Status: AdminStatusActive})
	require.Len(t, got, 2)
	assert.Equal(t, "Sarah Mitchell", got[0].FullName)
	assert.Equal(t, "David Okafor", got[1].FullName)
}

func TestVisibleAdminsByRole(t *testing.T) {
	got := VisibleAdmins(testAdmins(), AdminFilter{Role: RoleManager})
	require.Len(t, got, 1)
	assert.Equal(t, "Priya Raman", got[0].FullName)
}

func TestVisibleAdminsSearchIsCaseInsensitive(t *testing.T) {
	byName := VisibleAdmins(testAdmins(), AdminFilter{Search: "MITCHELL"})
	require.Len(t, byName, 1)
	assert.Equal(t, "Sarah Mitchell", byName[0].FullName)

	byEmail := VisibleAdmins(testAdmins(), AdminFilter{Search: "david@"})
	require.Len(t, byEmail, 1)
	assert.Equal(t, "David Okafor", byEmail[0].FullName)
}

func TestVisibleAdminsSearchSpansPhoneRoleAndStatus(t *testing.T) {
	byPhone := VisibleAdmins(testAdmins(), AdminFilter{Search: "0771234"})
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Sarah Mitchell", byPhone[0].FullName)

	byRole := VisibleAdmins(testAdmins(), AdminFilter{Search: "manager"})
	require.Len(t, byRole, 1)
	assert.Equal(t, "Priya Raman", byRole[0].FullName)

	byStatus := VisibleAdmins(testAdmins(), AdminFilter{Search: "PENDING"})
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Tom Weiss", byStatus[0].FullName)
}

func TestVisibleAdminsFieldsCombineWithAnd(t *testing.T) {
	// "a" appears in every name, so status does the narrowing.
	got := VisibleAdmins(testAdmins(), AdminFilter{Search: "a", Status: AdminStatusInactive})
	require.Len(t, got, 1)
	assert.Equal(t, "Priya Raman", got[0].FullName)

	got = VisibleAdmins(testAdmins(), AdminFilter{Search: "sarah", Status: AdminStatusPending})
	assert.Empty(t, got)
}

func TestVisiblePhotographersByStatusAndSpecialty(t *testing.T) {
	got := VisiblePhotographers(testPhotographers(), PhotographerFilter{
		Status:    PhotographerStatusActive,
		Specialty: "wedding",
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Elena Petrova", got[0].FullName)
}

func TestVisiblePhotographersByMinRating(t *testing.T) {
	got := VisiblePhotographers(testPhotographers(), PhotographerFilter{MinRating: 4.0})
	require.Len(t, got, 2)
	assert.Equal(t, "Elena Petrova", got[0].FullName)
	assert.Equal(t, "Aiko Tanaka", got[1].FullName)
}

func TestVisiblePhotographersMinRatingExcludesUnrated(t *testing.T) {
	got := VisiblePhotographers(testPhotographers(), PhotographerFilter{MinRating: 0.1})
	for _, p := range got {
		assert.NotNil(t, p.Rating)
	}
}

func TestVisiblePhotographersSearchSpansPhoneAndSpecialty(t *testing.T) {
	byPhone := VisiblePhotographers(testPhotographers(), PhotographerFilter{Search: "8880002"})
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Marcus Lee", byPhone[0].FullName)

	bySpecialty := VisiblePhotographers(testPhotographers(), PhotographerFilter{Search: "wedding"})
	require.Len(t, bySpecialty, 2)
	assert.Equal(t, "Elena Petrova", bySpecialty[0].FullName)
	assert.Equal(t, "Aiko Tanaka", bySpecialty[1].FullName)
}

func TestVisiblePhotographersByLocation(t *testing.T) {
	got := VisiblePhotographers(testPhotographers(), PhotographerFilter{Location: "berlin"})
	require.Len(t, got, 2)
}

func TestVisiblePhotographersPreservesOrder(t *testing.T) {
	got := VisiblePhotographers(testPhotographers(), PhotographerFilter{Search: "studio.example"})
	require.Len(t, got, 4)
	assert.Equal(t, "Elena Petrova", got[0].FullName)
	assert.Equal(t, "New Applicant", got[3].FullName)
}
