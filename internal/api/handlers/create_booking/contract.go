package create_booking

import (
	"context"

	"github.com/layananku/LSP-BookingGateway/internal/domain"
	createBooking "github.com/layananku/LSP-BookingGateway/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request, session domain.Session) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
