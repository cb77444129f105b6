package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/layananku/LSP-BookingGateway/internal/domain"
	coreClient "github.com/layananku/LSP-BookingGateway/internal/integrations/coreservice"
	"github.com/layananku/LSP-BookingGateway/internal/service/bookings/models"
)

// defaultHistoryLimit ограничение выборки журнала по умолчанию
const defaultHistoryLimit = 50

// Service сервис для работы с бронированиями
// Чтение и отмена проксируются в core backend; он остается
// источником истины по бронированиям
type Service struct {
	coreClient  CoreServiceClient
	journalRepo JournalRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	coreClient CoreServiceClient,
	journalRepo JournalRepository,
	logger Logger,
) *Service {
	return &Service{
		coreClient:  coreClient,
		journalRepo: journalRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только собственное бронирование
func (s *Service) GetByID(ctx context.Context, session domain.Session, bookingID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", bookingID, session.UserID)

	booking, err := s.coreClient.GetBooking(ctx, session.Token, bookingID)
	if err != nil {
		return nil, s.mapClientError("GetByID", bookingID, err)
	}

	if !booking.IsOwnedBy(session.UserID) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", session.UserID, bookingID)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", bookingID)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Ответ core backend дополнительно фильтруется по владельцу
func (s *Service) GetUserBookings(ctx context.Context, session domain.Session, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	if userID != session.UserID {
		s.logger.Warn("GetUserBookings: user=%d requested bookings of user=%d", session.UserID, userID)
		return nil, ErrAccessDenied
	}

	bookings, err := s.coreClient.ListBookings(ctx, session.Token)
	if err != nil {
		return nil, s.mapClientError("GetUserBookings", userID, err)
	}

	owned := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsOwnedBy(userID) {
			owned = append(owned, b)
		}
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(owned), userID)
	return models.FromDomainBookingList(owned), nil
}

// Cancel отменяет бронирование пользователя
// Отмена выполняется переводом статуса в cancelled через core backend
func (s *Service) Cancel(ctx context.Context, session domain.Session, bookingID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, session.UserID)

	booking, err := s.coreClient.GetBooking(ctx, session.Token, bookingID)
	if err != nil {
		return s.mapClientError("Cancel", bookingID, err)
	}

	if !booking.IsOwnedBy(session.UserID) {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", session.UserID, bookingID)
		return ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.coreClient.UpdateBookingStatus(ctx, session.Token, bookingID, domain.StatusCancelled); err != nil {
		return s.mapClientError("Cancel", bookingID, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// GetSubmissionHistory получает журнал отправок пользователя
// Журнал локальный для шлюза, core backend не участвует
func (s *Service) GetSubmissionHistory(ctx context.Context, session domain.Session, userID int64) (*models.SubmissionHistoryResponse, error) {
	s.logger.Info("GetSubmissionHistory: fetching journal for user=%d", userID)

	if userID != session.UserID {
		s.logger.Warn("GetSubmissionHistory: user=%d requested journal of user=%d", session.UserID, userID)
		return nil, ErrAccessDenied
	}

	records, err := s.journalRepo.GetByOwner(ctx, userID, defaultHistoryLimit)
	if err != nil {
		s.logger.Error("GetSubmissionHistory: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetSubmissionHistory - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSubmissionHistory: successfully fetched %d records for user=%d", len(records), userID)
	return models.FromDomainSubmissionRecords(records), nil
}

// mapClientError приводит ошибки клиента core backend к ошибкам сервиса
func (s *Service) mapClientError(operation string, id int64, err error) error {
	switch {
	case errors.Is(err, coreClient.ErrBookingNotFound):
		s.logger.Warn("%s: booking id=%d not found", operation, id)
		return ErrBookingNotFound
	case errors.Is(err, coreClient.ErrUnauthorized):
		s.logger.Warn("%s: core backend rejected credentials, id=%d", operation, id)
		return ErrUnauthorized
	default:
		s.logger.Error("%s: core backend error for id=%d: %v", operation, id, err)
		return fmt.Errorf("%w: %s - core backend error: %v", ErrInternal, operation, err)
	}
}
