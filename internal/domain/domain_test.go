package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Validator Tests ---

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		errMsg  string
	}{
		{"simple name", "Jane", false, ""},
		{"name with space", "Jane Doe", false, ""},
		{"two characters", "Jo", false, ""},
		{"fifty characters", "Abcdefghij Abcdefghij Abcdefghij Abcdefghij Abcdef", false, ""},
		{"empty", "", true, "first name is required"},
		{"one character", "J", true, "must be 2-50 characters"},
		{"fifty one characters", "Abcdefghij Abcdefghij Abcdefghij Abcdefghij Abcdefg", true, "must be 2-50 characters"},
		{"digits", "Jane2", true, "must be 2-50 characters"},
		{"punctuation", "O'Brien", true, "must be 2-50 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName("first name", tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
		errMsg  string
	}{
		{"valid email", "user@example.com", false, ""},
		{"valid email with dots", "first.last@example.co.uk", false, ""},
		{"valid email with plus", "user+tag@example.com", false, ""},
		{"valid email with percent", "user%x@example.com", false, ""},
		{"empty string", "", true, "email is required"},
		{"no at sign", "userexample.com", true, "invalid email format"},
		{"no domain", "user@", true, "invalid email format"},
		{"no user", "@example.com", true, "invalid email format"},
		{"no tld", "user@example", true, "invalid email format"},
		{"single char tld", "user@example.c", true, "invalid email format"},
		{"spaces", "user @example.com", true, "invalid email format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateMobile(t *testing.T) {
	tests := []struct {
		name    string
		mobile  string
		wantErr bool
	}{
		{"plain digits", "0123456789", false},
		{"with plus", "+4915123456789", false},
		{"with spaces and dashes", "012 345-67890", false},
		{"with parens", "(012) 3456-7890", false},
		{"empty", "", true},
		{"too short", "123456789", true},
		{"too long", "1234567890123456", true},
		{"letters", "01234abcde", true},
		{"plus in middle", "0123+456789", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMobile(tt.mobile)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateExperience(t *testing.T) {
	require.NoError(t, ValidateExperience(0))
	require.NoError(t, ValidateExperience(25))
	require.NoError(t, ValidateExperience(50))
	require.Error(t, ValidateExperience(-1))
	require.Error(t, ValidateExperience(51))
}

func TestValidatePortfolioURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"empty is allowed", "", false},
		{"https", "https://portfolio.example.com/jane", false},
		{"http", "http://example.com", false},
		{"no scheme", "portfolio.example.com", true},
		{"ftp", "ftp://example.com/files", true},
		{"relative path", "/jane/portfolio", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePortfolioURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateHourlyRate(t *testing.T) {
	require.NoError(t, ValidateHourlyRate(0))
	require.NoError(t, ValidateHourlyRate(15_000))
	require.Error(t, ValidateHourlyRate(-1))
}

// --- AppError Tests ---

func TestAppErrorCodesAndStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"not found", ErrNotFound("admin", "abc"), "NOT_FOUND", 404},
		{"conflict", ErrConflict("already assigned"), "CONFLICT", 409},
		{"validation", ErrValidation("bad input"), "VALIDATION_ERROR", 400},
		{"duplicate email", ErrDuplicateEmail("a@b.co"), "DUPLICATE_EMAIL", 409},
		{"invalid transition", ErrInvalidTransition("photographer", "pending", "suspended"), "INVALID_TRANSITION", 409},
		{"unauthorized", ErrUnauthorized("bad token"), "UNAUTHORIZED", 401},
		{"forbidden", ErrForbidden("no permission"), "FORBIDDEN", 403},
		{"account locked", ErrAccountLocked("too many attempts"), "ACCOUNT_LOCKED", 429},
		{"internal", ErrInternal("boom", nil), "INTERNAL_ERROR", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.Contains(t, tt.err.Error(), tt.wantCode)
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := ErrInternal("query failed", cause)

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestErrInvalidTransitionMessage(t *testing.T) {
	err := ErrInvalidTransition("photographer", "pending", "suspended")
	assert.Equal(t, "photographer cannot move from pending to suspended", err.Message)
}
