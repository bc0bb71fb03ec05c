package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capturely/platform/internal/domain"
)

func newTestJWTManager() *JWTManager {
	return NewJWTManager("test-secret-key", 8*time.Hour, 30*24*time.Hour)
}

func TestGenerateAndValidateAdminToken(t *testing.T) {
	mgr := newTestJWTManager()
	adminID := uuid.New()

	token, err := mgr.GenerateToken(RealmAdmin, adminID, "admin@capturely.com", string(domain.RoleSuperAdmin), false)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := mgr.ValidateTokenForRealm(token, RealmAdmin)
	require.NoError(t, err)
	assert.Equal(t, adminID.String(), claims.Subject)
	assert.Equal(t, RealmAdmin, claims.Realm)
	assert.Equal(t, "admin@capturely.com", claims.Email)
	assert.Equal(t, string(domain.RoleSuperAdmin), claims.Role)
}

func TestGenerateAndValidatePhotographerToken(t *testing.T) {
	mgr := newTestJWTManager()
	photographerID := uuid.New()

	token, err := mgr.GenerateToken(RealmPhotographer, photographerID, "photo@studio.example", "", false)
	require.NoError(t, err)

	claims, err := mgr.ValidateTokenForRealm(token, RealmPhotographer)
	require.NoError(t, err)
	assert.Equal(t, RealmPhotographer, claims.Realm)
}

func TestRememberMeExtendsExpiry(t *testing.T) {
	mgr := newTestJWTManager()
	adminID := uuid.New()

	short, err := mgr.GenerateToken(RealmAdmin, adminID, "a@b.co", "admin", false)
	require.NoError(t, err)
	long, err := mgr.GenerateToken(RealmAdmin, adminID, "a@b.co", "admin", true)
	require.NoError(t, err)

	shortClaims, err := mgr.ValidateToken(short)
	require.NoError(t, err)
	longClaims, err := mgr.ValidateToken(long)
	require.NoError(t, err)

	assert.True(t, longClaims.ExpiresAt.After(shortClaims.ExpiresAt.Add(24*time.Hour)))
}

func TestUnknownRealmRejected(t *testing.T) {
	mgr := newTestJWTManager()

	_, err := mgr.GenerateToken(Realm("customer"), uuid.New(), "", "", false)
	assert.Error(t, err)
}

func TestRealmMismatchRejected(t *testing.T) {
	mgr := newTestJWTManager()
	photographerID := uuid.New()

	token, err := mgr.GenerateToken(RealmPhotographer, photographerID, "", "", false)
	require.NoError(t, err)

	_, err = mgr.ValidateTokenForRealm(token, RealmAdmin)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected realm admin")
}

func TestInvalidSecretRejected(t *testing.T) {
	mgr1 := NewJWTManager("secret-1", 8*time.Hour, 30*24*time.Hour)
	mgr2 := NewJWTManager("secret-2", 8*time.Hour, 30*24*time.Hour)

	token, err := mgr1.GenerateToken(RealmAdmin, uuid.New(), "", "admin", false)
	require.NoError(t, err)

	_, err = mgr2.ValidateToken(token)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	mgr := NewJWTManager("secret", 1*time.Millisecond, 1*time.Millisecond)

	token, err := mgr.GenerateToken(RealmAdmin, uuid.New(), "", "admin", false)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = mgr.ValidateToken(token)
	assert.Error(t, err)
}
