package freshness

import (
	"fmt"
	"time"
)

// Bucket is a coarse freshness classification.
type Bucket string

const (
	Fresh    Bucket = "fresh"
	Warning  Bucket = "warning"
	Critical Bucket = "critical"
	Expired  Bucket = "expired"
)

// Upper bounds (inclusive) of the Critical and Warning buckets, in days.
const (
	CriticalDays = 3
	WarningDays  = 7
)

// Status describes how close an item is to its expiration date.
type Status struct {
	Bucket          Bucket `json:"bucket"`
	DaysUntilExpiry int    `json:"days_until_expiry"`
	Message         string `json:"message"`
}

// Today returns the current local date at midnight.
func Today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// Date returns the calendar date of t, read in t's own location, as UTC
// midnight.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the number of calendar days from today until expiration.
// Each side is read as a date in its own location, so time of day, UTC
// offsets and DST changes do not shift the count.
func DaysUntil(expiration, today time.Time) int {
	return int(Date(expiration).Sub(Date(today)).Hours() / 24)
}

// Classify returns the freshness status of an expiration date relative to
// today. The second return value is false when there is no expiration date.
func Classify(expiration *time.Time, today time.Time) (Status, bool) {
	if expiration == nil {
		return Status{}, false
	}

	days := DaysUntil(*expiration, today)
	switch {
	case days < 0:
		ago := -days
		return Status{Bucket: Expired, DaysUntilExpiry: days, Message: fmt.Sprintf("Expired %d %s ago", ago, dayWord(ago))}, true
	case days <= CriticalDays:
		return Status{Bucket: Critical, DaysUntilExpiry: days, Message: fmt.Sprintf("Expires in %d %s", days, dayWord(days))}, true
	case days <= WarningDays:
		return Status{Bucket: Warning, DaysUntilExpiry: days, Message: fmt.Sprintf("Expires in %d days", days)}, true
	default:
		return Status{Bucket: Fresh, DaysUntilExpiry: days, Message: fmt.Sprintf("Fresh for %d days", days)}, true
	}
}

func dayWord(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}
