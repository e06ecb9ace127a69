package impl

import "time"

// Display layouts used across listings and the dashboard.
const (
	dateLayout  = "06/01/02"
	birthLayout = "060102"
)

// formatDate renders a timestamp as YY/MM/DD for listing payloads.
func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// formatBirth renders a birth date as YYMMDD.
func formatBirth(t time.Time) string {
	return t.Format(birthLayout)
}
