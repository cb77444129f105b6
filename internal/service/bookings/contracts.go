package bookings

import (
	"context"

	"github.com/layananku/LSP-BookingGateway/internal/domain"
)

// CoreServiceClient интерфейс клиента core backend
type CoreServiceClient interface {
	GetBooking(ctx context.Context, token string, bookingID int64) (*domain.Booking, error)
	ListBookings(ctx context.Context, token string) ([]*domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, token string, bookingID int64, status domain.BookingStatus) error
}

// JournalRepository интерфейс репозитория журнала отправок
type JournalRepository interface {
	GetByOwner(ctx context.Context, ownerUserID int64, limit uint64) ([]*domain.SubmissionRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
