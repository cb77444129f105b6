package get_booking

import (
	"context"

	"github.com/layananku/LSP-BookingGateway/internal/domain"
	"github.com/layananku/LSP-BookingGateway/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, session domain.Session, bookingID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
