// Package export renders table data as CSV downloads.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/capturely/platform/internal/domain"
)

// Admin and photographer export columns, in download order.
var (
	AdminHeaders        = []string{"Name", "Email", "Phone", "Role", "Status"}
	PhotographerHeaders = []string{"Name", "Email", "Phone", "Specialty", "Rating", "Status", "Location"}
)

// quote wraps a field in double quotes, doubling any embedded quotes.
// Every field is quoted so commas and newlines in free text never break
// the row structure.
func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quote(f))
	}
	b.WriteByte('\n')
}

// AdminsCSV renders the admin table rows as a CSV document.
func AdminsCSV(admins []*domain.Admin) string {
	var b strings.Builder
	writeRow(&b, AdminHeaders)
	for _, a := range admins {
		writeRow(&b, []string{a.FullName, a.Email, a.Mobile, string(a.Role), a.Status})
	}
	return b.String()
}

// PhotographersCSV renders the photographer table rows as a CSV document.
// Unrated photographers export an empty Rating cell.
func PhotographersCSV(photographers []*domain.Photographer) string {
	var b strings.Builder
	writeRow(&b, PhotographerHeaders)
	for _, p := range photographers {
		rating := ""
		if p.Rating != nil {
			rating = strconv.FormatFloat(*p.Rating, 'f', 1, 64)
		}
		writeRow(&b, []string{p.FullName, p.Email, p.Mobile, p.Specialization, rating, p.Status, p.Location})
	}
	return b.String()
}

// FileName builds the download name for an export, e.g. admins_2026-08-31.csv.
func FileName(entity string, date time.Time) string {
	return fmt.Sprintf("%s_%s.csv", entity, date.Format("2006-01-02"))
}
