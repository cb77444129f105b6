package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/layananku/LSP-BookingGateway/internal/domain"
	"github.com/layananku/LSP-BookingGateway/internal/integrations/coreservice"
	"github.com/layananku/LSP-BookingGateway/pkg/ptr"
)

// UseCase use case для создания бронирования
// Нормализует форму любой из трех вертикалей в каноническую запись,
// валидирует ее и отправляет в core backend
type UseCase struct {
	coreClient   CoreServiceClient
	journalRepo  JournalRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	coreClient CoreServiceClient,
	journalRepo JournalRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		coreClient:   coreClient,
		journalRepo:  journalRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Пайплайн: предусловие сессии -> нормализация -> валидация -> отправка.
// Запись создается заново на каждую попытку и не кэшируется
func (uc *UseCase) Execute(ctx context.Context, req *Request, session domain.Session) (*Response, error) {
	// 1. Предусловие: без аутентифицированной сессии запрос к core backend
	// не выполняется вовсе
	if !session.IsAuthenticated() {
		uc.logger.Warn("CreateBooking: rejected request without authenticated session")
		return nil, ErrNoSession
	}

	uc.logger.Info("CreateBooking: user=%d, category=%s", session.UserID, req.ServiceCategory)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Нормализуем форму в каноническую запись
	booking, err := normalize(req, session, now, uc.logger)
	if err != nil {
		uc.logger.Warn("CreateBooking: normalization failed for user=%d: %v", session.UserID, err)
		return nil, err
	}

	// 4. Валидация обязательных полей по вертикали
	if err := validateBooking(booking); err != nil {
		uc.logger.Warn("CreateBooking: validation failed for user=%d: %v", session.UserID, err)
		return nil, err
	}

	// 5. Отправляем в core backend
	receipt, err := uc.coreClient.CreateBooking(ctx, session.Token, booking)
	if err != nil {
		uc.journal(ctx, booking, err)

		var submissionErr *coreservice.SubmissionError
		if errors.As(err, &submissionErr) {
			uc.logger.Warn("CreateBooking: core backend rejected booking for user=%d: %s",
				session.UserID, submissionErr.Message)
			return nil, err
		}

		uc.logger.Error("CreateBooking: failed to submit booking for user=%d: %v", session.UserID, err)
		return nil, fmt.Errorf("%w: failed to submit booking: %v", ErrInternal, err)
	}

	booking.ID = receipt.BookingID
	uc.journal(ctx, booking, nil)

	uc.logger.Info("CreateBooking: successfully created booking id=%d for user=%d, total=%.2f",
		receipt.BookingID, session.UserID, booking.TotalAmount)

	// 6. Конвертируем в response
	return &Response{
		BookingID:           receipt.BookingID,
		ServiceCategory:     booking.ServiceCategory,
		ProviderReferenceID: booking.ProviderReferenceID,
		ItemReferenceID:     booking.ItemReferenceID,
		DurationMinutes:     booking.DurationMinutes,
		ScheduledTime:       booking.ScheduledTime.String(),
		ScheduledDate:       booking.ScheduledDate,
		TotalAmount:         booking.TotalAmount,
		Notes:               booking.Notes,
		Status:              string(booking.Status),
		PaymentStatus:       string(booking.PaymentStatus),
	}, nil
}

// journal записывает попытку отправки в журнал
// Журнал best-effort: его ошибка логируется и никогда не влияет
// на результат бронирования
func (uc *UseCase) journal(ctx context.Context, booking *domain.Booking, submitErr error) {
	record := &domain.SubmissionRecord{
		OwnerUserID:         booking.OwnerUserID,
		ServiceCategory:     booking.ServiceCategory,
		ProviderReferenceID: booking.ProviderReferenceID,
		ItemReferenceID:     booking.ItemReferenceID,
		ScheduledDate:       booking.ScheduledDate,
		ScheduledTime:       booking.ScheduledTime.String(),
		TotalAmount:         booking.TotalAmount,
	}

	switch {
	case submitErr == nil:
		record.Outcome = domain.OutcomeSubmitted
		record.UpstreamBookingID = ptr.Ptr(booking.ID)
	default:
		var submissionErr *coreservice.SubmissionError
		if errors.As(submitErr, &submissionErr) {
			record.Outcome = domain.OutcomeRejected
			record.ErrorText = ptr.Ptr(submissionErr.Message)
		} else {
			record.Outcome = domain.OutcomeFailed
			record.ErrorText = ptr.Ptr(submitErr.Error())
		}
	}

	if _, err := uc.journalRepo.Create(ctx, record); err != nil {
		uc.logger.Error("CreateBooking: failed to journal submission for user=%d: %v",
			booking.OwnerUserID, err)
	}
}
