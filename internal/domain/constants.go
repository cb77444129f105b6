package domain

import (
	"strings"
	"time"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Consultation duration codes for psychology bookings.
// The platform sells consultations in fixed packages; the code is the
// number of one-hour units in the package.
const (
	DurationCodeSingle   = 1 // 1 hour
	DurationCodeTriple   = 3 // 3 hours
	DurationCodeExtended = 5 // 5 hours
)

// DurationFromCode resolves a duration code into billing units (hours)
// and total session minutes. An unknown code falls back to the single
// one-hour package.
func DurationFromCode(code int) (units int, minutes int) {
	switch code {
	case DurationCodeTriple:
		return 3, 180
	case DurationCodeExtended:
		return 5, 300
	case DurationCodeSingle:
		return 1, 60
	default:
		return 1, 60
	}
}

// weekdayNames maps Indonesian day names to their weekday ordinal.
// The ordinal scheme matches time.Weekday (Sunday/Minggu = 0).
var weekdayNames = map[string]time.Weekday{
	"minggu": time.Sunday,
	"senin":  time.Monday,
	"selasa": time.Tuesday,
	"rabu":   time.Wednesday,
	"kamis":  time.Thursday,
	"jumat":  time.Friday,
	"jum'at": time.Friday,
	"sabtu":  time.Saturday,
}

// WeekdayIndex resolves an Indonesian day name to a time.Weekday.
// The lookup is case-insensitive; ok is false for unknown names.
func WeekdayIndex(name string) (time.Weekday, bool) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}

// Submission journal outcomes
const (
	OutcomeSubmitted = "submitted" // accepted by the core backend
	OutcomeRejected  = "rejected"  // rejected by the core backend
	OutcomeFailed    = "failed"    // transport or internal failure
)
