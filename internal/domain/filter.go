package domain

import "strings"

// searchMatch reports whether any field contains q as a case-insensitive
// substring.
func searchMatch(q string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// AdminFilter narrows an admin listing. Zero-value fields match everything;
// set fields combine with AND. Search matches name, email, phone, role or
// status, case-insensitively.
type AdminFilter struct {
	Search string
	Status string
	Role   AdminRole
}

// Matches reports whether a satisfies every set field of the filter.
func (f AdminFilter) Matches(a *Admin) bool {
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.Role != "" && a.Role != f.Role {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !searchMatch(q, a.FullName, a.Email, a.Mobile, string(a.Role), a.Status) {
			return false
		}
	}
	return true
}

// VisibleAdmins returns the admins matching f, preserving input order.
func VisibleAdmins(admins []*Admin, f AdminFilter) []*Admin {
	out := make([]*Admin, 0, len(admins))
	for _, a := range admins {
		if f.Matches(a) {
			out = append(out, a)
		}
	}
	return out
}

// PhotographerFilter narrows a photographer listing. Semantics mirror
// AdminFilter: empty fields match everything, set fields AND together.
type PhotographerFilter struct {
	Search    string
	Status    string
	Specialty string
	Location  string
	MinRating float64
}

// Matches reports whether p satisfies every set field of the filter.
// Search matches name, email, phone, specialty or location; MinRating
// excludes unrated photographers when set above zero.
func (f PhotographerFilter) Matches(p *Photographer) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Specialty != "" && !strings.EqualFold(p.Specialization, f.Specialty) {
		return false
	}
	if f.Location != "" && !strings.EqualFold(p.Location, f.Location) {
		return false
	}
	if f.MinRating > 0 {
		if p.Rating == nil || *p.Rating < f.MinRating {
			return false
		}
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !searchMatch(q, p.FullName, p.Email, p.Mobile, p.Specialization, p.Location) {
			return false
		}
	}
	return true
}

// VisiblePhotographers returns the photographers matching f, preserving
// input order.
func VisiblePhotographers(photographers []*Photographer, f PhotographerFilter) []*Photographer {
	out := make([]*Photographer, 0, len(photographers))
	for _, p := range photographers {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}
