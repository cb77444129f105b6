package cancel_booking

import (
	"context"

	"github.com/layananku/LSP-BookingGateway/internal/domain"
)

type BookingService interface {
	Cancel(ctx context.Context, session domain.Session, bookingID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
