package get_submission_history

import (
	"context"

	"github.com/layananku/LSP-BookingGateway/internal/domain"
	"github.com/layananku/LSP-BookingGateway/internal/service/bookings/models"
)

type BookingService interface {
	GetSubmissionHistory(ctx context.Context, session domain.Session, userID int64) (*models.SubmissionHistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
