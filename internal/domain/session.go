package domain

import "time"

// Session is a read-only snapshot of the caller's identity, taken once
// per request. It is passed down explicitly; nothing below the API layer
// reads identity from shared state.
type Session struct {
	UserID int64
	Name   string
	Token  string // bearer credential forwarded to the core backend
}

// IsAuthenticated returns true if the session carries a user identity
func (s Session) IsAuthenticated() bool {
	return s.UserID > 0
}

// SubmissionRecord is one journal entry describing a booking submission
// attempt and its outcome. The journal is gateway-side operational
// history; the core backend remains the authority on bookings.
type SubmissionRecord struct {
	ID                  int64
	OwnerUserID         int64
	ServiceCategory     ServiceCategory
	ProviderReferenceID *int64
	ItemReferenceID     *int64
	ScheduledDate       string
	ScheduledTime       string
	TotalAmount         float64
	Outcome             string // submitted / rejected / failed
	UpstreamBookingID   *int64
	ErrorText           *string
	CreatedAt           time.Time
}
