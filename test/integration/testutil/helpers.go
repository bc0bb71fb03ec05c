//go:build integration

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/capturely/platform/internal/auth"
	"github.com/capturely/platform/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// GET performs an unauthenticated GET request.
func (env *TestEnv) GET(path string) *http.Response {
	env.t.Helper()
	resp, err := http.Get(env.Server.URL + path)
	if err != nil {
		env.t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

// POST performs a POST request with optional auth token.
func (env *TestEnv) POST(path string, body interface{}, token string) *http.Response {
	env.t.Helper()
	return env.request(http.MethodPost, path, body, token)
}

// AuthGET performs an authenticated GET request.
func (env *TestEnv) AuthGET(path, token string) *http.Response {
	env.t.Helper()
	return env.request(http.MethodGet, path, nil, token)
}

// AuthPUT performs an authenticated PUT request.
func (env *TestEnv) AuthPUT(path string, body interface{}, token string) *http.Response {
	env.t.Helper()
	return env.request(http.MethodPut, path, body, token)
}

// AuthPATCH performs an authenticated PATCH request.
func (env *TestEnv) AuthPATCH(path string, body interface{}, token string) *http.Response {
	env.t.Helper()
	return env.request(http.MethodPatch, path, body, token)
}

// AuthDELETE performs an authenticated DELETE request.
func (env *TestEnv) AuthDELETE(path, token string) *http.Response {
	env.t.Helper()
	return env.request(http.MethodDelete, path, nil, token)
}

// OPTIONS performs an OPTIONS request.
func (env *TestEnv) OPTIONS(path string) *http.Response {
	env.t.Helper()
	return env.request(http.MethodOptions, path, nil, "")
}

func (env *TestEnv) request(method, path string, body interface{}, token string) *http.Response {
	env.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			env.t.Fatalf("%s %s: encode: %v", method, path, err)
		}
	}
	req, err := http.NewRequest(method, env.Server.URL+path, &buf)
	if err != nil {
		env.t.Fatalf("%s %s: new request: %v", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		env.t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

// SeedAdmin inserts an admin row directly and returns its ID and a JWT.
// Permissions are derived from the role, matching what Create would store.
func (env *TestEnv) SeedAdmin(email, password string, role domain.AdminRole, status string) (uuid.UUID, string) {
	env.t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	adminID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		env.t.Fatalf("SeedAdmin: hash: %v", err)
	}

	perms := domain.PermissionsFor(role)
	permStrs := make([]string, len(perms))
	for i, p := range perms {
		permStrs[i] = string(p)
	}

	_, err = env.Pool.Exec(ctx, `
		INSERT INTO admins (id, first_name, last_name, email, mobile, role,
			start_date, status, permissions, password_hash)
		VALUES ($1, 'Test', 'Admin', $2, '+1 555 000 0000', $3, now(), $4, $5, $6)`,
		adminID, email, string(role), status, permStrs, string(hash))
	if err != nil {
		env.t.Fatalf("SeedAdmin: insert: %v", err)
	}

	token, err := env.JWTMgr.GenerateToken(auth.RealmAdmin, adminID, email, string(role), false)
	if err != nil {
		env.t.Fatalf("SeedAdmin: token: %v", err)
	}
	return adminID, token
}

// SuperAdminToken seeds an active super_admin and returns its token.
func (env *TestEnv) SuperAdminToken() string {
	env.t.Helper()
	_, token := env.SeedAdmin("root-"+uuid.New().String()[:8]+"@capturely.test", "rootsecret1", domain.RoleSuperAdmin, domain.AdminStatusActive)
	return token
}

// LoginAdmin authenticates an admin via the API and returns the token.
func (env *TestEnv) LoginAdmin(email, password string) string {
	env.t.Helper()
	resp := env.POST("/auth/login", map[string]interface{}{
		"email":    email,
		"password": password,
	}, "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		env.t.Fatalf("LoginAdmin: expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		env.t.Fatalf("LoginAdmin: decode: %v", err)
	}
	return result.Token
}

// SeedPhotographer inserts a photographer row directly and returns its ID.
func (env *TestEnv) SeedPhotographer(name, email, status string) uuid.UUID {
	env.t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id := uuid.New()
	_, err := env.Pool.Exec(ctx, `
		INSERT INTO photographers (id, full_name, email, mobile, hired_date,
			experience_years, specialization, location, status)
		VALUES ($1, $2, $3, '+1 555 111 2222', now(), 5, 'Wedding', 'Austin', $4)`,
		id, name, email, status)
	if err != nil {
		env.t.Fatalf("SeedPhotographer: insert: %v", err)
	}
	return id
}

// SeedBooking inserts an unassigned booking row directly and returns its ID.
func (env *TestEnv) SeedBooking(customerName string, eventDate time.Time) uuid.UUID {
	env.t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id := uuid.New()
	_, err := env.Pool.Exec(ctx, `
		INSERT INTO bookings (id, customer_name, event_type, event_date, location, status)
		VALUES ($1, $2, 'Wedding', $3, 'Austin', 'unassigned')`,
		id, customerName, eventDate)
	if err != nil {
		env.t.Fatalf("SeedBooking: insert: %v", err)
	}
	return id
}

// FakeUUID returns a random UUID string for test placeholders.
func FakeUUID() string {
	return uuid.New().String()
}
