package get_user_bookings

import (
	"context"

	"github.com/layananku/LSP-BookingGateway/internal/domain"
	"github.com/layananku/LSP-BookingGateway/internal/service/bookings/models"
)

type BookingService interface {
	GetUserBookings(ctx context.Context, session domain.Session, userID int64) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
