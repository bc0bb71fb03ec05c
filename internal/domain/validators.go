package domain

import (
	"fmt"
	"net/url"
	"regexp"
)

var (
	nameRegex   = regexp.MustCompile(`^[a-zA-Z\s]{2,50}$`)
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	mobileRegex = regexp.MustCompile(`^\+?[0-9\s\-()]{10,15}$`)
)

// ValidateName checks a first or last name: 2-50 letters and spaces.
func ValidateName(field, name string) error {
	if name == "" {
		return fmt.Errorf("%s is required", field)
	}
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("%s must be 2-50 characters and contain only letters", field)
	}
	return nil
}

// ValidateEmail checks if an email address is valid.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidateMobile checks a mobile number: 10-15 digits with optional
// formatting characters and leading plus.
func ValidateMobile(mobile string) error {
	if mobile == "" {
		return fmt.Errorf("mobile number is required")
	}
	if !mobileRegex.MatchString(mobile) {
		return fmt.Errorf("invalid mobile number")
	}
	return nil
}

// ValidateExperience checks years of experience against the allowed bounds.
func ValidateExperience(years int) error {
	if years < MinExperienceYears || years > MaxExperienceYears {
		return fmt.Errorf("experience must be between %d and %d years, got %d",
			MinExperienceYears, MaxExperienceYears, years)
	}
	return nil
}

// ValidatePortfolioURL checks an optional portfolio link. Empty is allowed;
// anything else must be an absolute http(s) URL.
func ValidatePortfolioURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return fmt.Errorf("invalid portfolio URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("portfolio URL must use http or https")
	}
	return nil
}

// ValidateHourlyRate checks that an hourly rate is non-negative (in cents).
func ValidateHourlyRate(cents int64) error {
	if cents < 0 {
		return fmt.Errorf("hourly rate must not be negative, got %d", cents)
	}
	return nil
}
