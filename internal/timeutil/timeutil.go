package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FromEpochMillis converts an epoch-milliseconds timestamp to a UTC time.
// The draft platform reports scheduled start times in this form.
func FromEpochMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
