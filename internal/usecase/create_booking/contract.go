package create_booking

import (
	"context"
	"time"

	"github.com/layananku/LSP-BookingGateway/internal/domain"
	"github.com/layananku/LSP-BookingGateway/internal/integrations/coreservice"
)

// CoreServiceClient интерфейс клиента core backend
type CoreServiceClient interface {
	CreateBooking(ctx context.Context, token string, booking *domain.Booking) (*coreservice.BookingReceipt, error)
}

// JournalRepository интерфейс репозитория журнала отправок
type JournalRepository interface {
	Create(ctx context.Context, record *domain.SubmissionRecord) (*domain.SubmissionRecord, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
