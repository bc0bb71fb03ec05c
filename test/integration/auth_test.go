//go:build integration

package integration

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/capturely/platform/internal/auth"
	"github.com/capturely/platform/internal/domain"
	"github.com/capturely/platform/test/integration/testutil"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─── Login Tests ────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	env := testutil.NewTestEnv(t)
	adminID, _ := env.SeedAdmin("login@capturely.test", "securepass123", domain.RoleManager, domain.AdminStatusActive)

	resp := env.POST("/auth/login", map[string]interface{}{
		"email": "login@capturely.test", "password": "securepass123",
	}, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Token       string   `json:"token"`
		Email       string   `json:"email"`
		Role        string   `json:"role"`
		Permissions []string `json:"permissions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "login@capturely.test", result.Email)
	assert.Equal(t, "manager", result.Role)
	assert.Len(t, result.Permissions, 5)

	// last_login is stamped on success
	var lastLogin *string
	env.Pool.QueryRow(t.Context(),
		"SELECT last_login::text FROM admins WHERE id = $1", adminID).Scan(&lastLogin)
	assert.NotNil(t, lastLogin)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.SeedAdmin("wrongpw@capturely.test", "securepass123", domain.RoleAdmin, domain.AdminStatusActive)

	resp := env.POST("/auth/login", map[string]interface{}{
		"email": "wrongpw@capturely.test", "password": "wrongpassword",
	}, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_NonexistentEmail(t *testing.T) {
	env := testutil.NewTestEnv(t)
	resp := env.POST("/auth/login", map[string]interface{}{
		"email": "noexist@capturely.test", "password": "securepass123",
	}, "")
	defer resp.Body.Close()

	// Same error as wrong password (no info leak)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_PendingAccountRejected(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.SeedAdmin("pending@capturely.test", "securepass123", domain.RoleAdmin, domain.AdminStatusPending)

	resp := env.POST("/auth/login", map[string]interface{}{
		"email": "pending@capturely.test", "password": "securepass123",
	}, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestLogin_InactiveAccountRejected(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.SeedAdmin("inactive@capturely.test", "securepass123", domain.RoleAdmin, domain.AdminStatusInactive)

	resp := env.POST("/auth/login", map[string]interface{}{
		"email": "inactive@capturely.test", "password": "securepass123",
	}, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestLogin_InvalidEmail(t *testing.T) {
	env := testutil.NewTestEnv(t)
	resp := env.POST("/auth/login", map[string]interface{}{
		"email": "not-an-email", "password": "securepass123",
	}, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_EmptyBody(t *testing.T) {
	env := testutil.NewTestEnv(t)
	resp := env.POST("/auth/login", nil, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_LockoutAfterFailedAttempts(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.SeedAdmin("lockout@capturely.test", "securepass123", domain.RoleAdmin, domain.AdminStatusActive)

	for i := 0; i < 5; i++ {
		resp := env.POST("/auth/login", map[string]interface{}{
			"email": "lockout@capturely.test", "password": "wrongpassword",
		}, "")
		resp.Body.Close()
	}

	// Correct credentials are locked out too
	resp := env.POST("/auth/login", map[string]interface{}{
		"email": "lockout@capturely.test", "password": "securepass123",
	}, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	testutil.AssertErrorCode(t, resp, "ACCOUNT_LOCKED")
}

func TestLogin_ValidJWT(t *testing.T) {
	env := testutil.NewTestEnv(t)
	adminID, _ := env.SeedAdmin("jwt@capturely.test", "securepass123", domain.RoleSuperAdmin, domain.AdminStatusActive)
	token := env.LoginAdmin("jwt@capturely.test", "securepass123")

	parsed, err := jwt.ParseWithClaims(token, &auth.Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(testutil.TestJWTSecret), nil
	})
	require.NoError(t, err)

	claims := parsed.Claims.(*auth.Claims)
	assert.Equal(t, auth.RealmAdmin, claims.Realm)
	assert.Equal(t, adminID.String(), claims.Subject)
	assert.Equal(t, "super_admin", claims.Role)
}

func TestLogin_RememberMeExtendsExpiry(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.SeedAdmin("remember@capturely.test", "securepass123", domain.RoleAdmin, domain.AdminStatusActive)

	resp := env.POST("/auth/login", map[string]interface{}{
		"email": "remember@capturely.test", "password": "securepass123", "remember": true,
	}, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	claims, err := env.JWTMgr.ValidateToken(result.Token)
	require.NoError(t, err)
	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Greater(t, lifetime.Hours(), 24.0)
}

// ─── JWT Middleware Tests ───────────────────────────────────────────────────

func TestAdminRoute_NoToken(t *testing.T) {
	env := testutil.NewTestEnv(t)
	resp := env.GET("/admin/admins")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoute_MalformedToken(t *testing.T) {
	env := testutil.NewTestEnv(t)
	resp := env.AuthGET("/admin/admins", "not.a.valid.jwt")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoute_ValidToken(t *testing.T) {
	env := testutil.NewTestEnv(t)
	token := env.SuperAdminToken()

	resp := env.AuthGET("/admin/admins", token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealth_NoAuthRequired(t *testing.T) {
	env := testutil.NewTestEnv(t)
	resp := env.GET("/health")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "healthy", result["status"])
}

func TestCORS_OptionsRequest(t *testing.T) {
	env := testutil.NewTestEnv(t)
	resp := env.OPTIONS("/health")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.True(t, strings.Contains(resp.Header.Get("Access-Control-Allow-Methods"), "GET"))
}
