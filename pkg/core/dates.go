package core

import "time"

// Layouts of the date strings stored in the collections.
const (
	DateLayout      = "02-01-2006"          // DD-MM-YYYY
	TimestampLayout = "02-01-2006 15:04:05" // DD-MM-YYYY HH:MM:SS

	// dateParseLayout also accepts days and months without the leading zero (1-3-2025).
	dateParseLayout = "2-1-2006"
)

// ParseDate parses a D-M-YYYY or DD-MM-YYYY date. Failures are reported as a
// ValidationError on field.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateParseLayout, value)
	if err != nil {
		return time.Time{}, Invalid(field, value, err)
	}
	return t, nil
}

// FormatTimestamp renders t in the note timestamp layout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
