package domain

import (
	"time"

	"github.com/layananku/LSP-BookingGateway/pkg/types"
)

// ServiceCategory identifies which vertical a booking belongs to
type ServiceCategory int

const (
	CategoryPsychology   ServiceCategory = 1
	CategoryWorkshop     ServiceCategory = 2
	CategoryDailyService ServiceCategory = 3
)

// IsValid returns true if the category is one of the known verticals
func (c ServiceCategory) IsValid() bool {
	return c == CategoryPsychology || c == CategoryWorkshop || c == CategoryDailyService
}

// String returns a human-readable category name
func (c ServiceCategory) String() string {
	switch c {
	case CategoryPsychology:
		return "psychology"
	case CategoryWorkshop:
		return "workshop"
	case CategoryDailyService:
		return "daily_service"
	default:
		return "unknown"
	}
}

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusDone      BookingStatus = "done"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// Booking is the single normalized record submitted to the core backend
// regardless of which vertical form it originated from.
// Which optional fields are meaningful depends on ServiceCategory:
//   - Psychology: ProviderReferenceID (doctor) and DurationMinutes are set
//   - Workshop: ProviderReferenceID (workshop) is set, ItemReferenceID (product) is optional
//   - DailyService: only ItemReferenceID (offering) is set
type Booking struct {
	ID                  int64
	ServiceCategory     ServiceCategory
	ProviderReferenceID *int64 // doctor or workshop; nil for daily services
	ItemReferenceID     *int64 // workshop product or daily offering; nil for psychology
	DurationMinutes     *int
	ScheduledTime       types.TimeString
	ScheduledDate       string // YYYY-MM-DD
	TotalAmount         float64
	Notes               string
	Status              BookingStatus
	PaymentStatus       PaymentStatus
	OwnerUserID         int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusDone
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsOwnedBy returns true if the booking belongs to the given user
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.OwnerUserID == userID
}
