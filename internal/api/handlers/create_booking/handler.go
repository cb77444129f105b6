package create_booking

import (
	"errors"
	"net/http"

	"github.com/layananku/LSP-BookingGateway/internal/api/handlers"
	"github.com/layananku/LSP-BookingGateway/internal/api/middleware"
	"github.com/layananku/LSP-BookingGateway/internal/integrations/coreservice"
	createBooking "github.com/layananku/LSP-BookingGateway/internal/usecase/create_booking"
	"github.com/layananku/LSP-BookingGateway/pkg/types"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingFields       = "отсутствуют обязательные поля"
	msgInvalidTime         = "некорректный формат времени начала, ожидается HH:MM"
	msgUnauthorized        = "требуется аутентификация"
	msgUpstreamUnavailable = "сервис бронирования временно недоступен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session := middleware.SessionFromContext(r.Context())

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(), session)
	if err != nil {
		// Обработка ошибок use case
		var validationErr *createBooking.ValidationError
		var submissionErr *coreservice.SubmissionError

		switch {
		case errors.Is(err, createBooking.ErrNoSession):
			h.logger.Warn("POST /bookings - No authenticated session")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.As(err, &validationErr):
			h.logger.Warn("POST /bookings - Validation failed: user_id=%d, fields=%v",
				session.UserID, validationErr.Fields)
			handlers.RespondValidationError(w, msgMissingFields, validationErr.Fields)

		case errors.Is(err, types.ErrInvalidTimeString):
			h.logger.Warn("POST /bookings - Invalid start time: user_id=%d: %v", session.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, coreservice.ErrUnauthorized):
			h.logger.Warn("POST /bookings - Core backend rejected credentials: user_id=%d", session.UserID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.As(err, &submissionErr):
			// Сообщение core backend безопасно для показа пользователю,
			// клиентские статусы пробрасываются как есть
			h.logger.Warn("POST /bookings - Core backend rejected booking: user_id=%d, status=%d, msg=%s",
				session.UserID, submissionErr.StatusCode, submissionErr.Message)
			status := submissionErr.StatusCode
			if status < http.StatusBadRequest || status >= http.StatusInternalServerError {
				status = http.StatusBadGateway
			}
			handlers.RespondError(w, status, submissionErr.Message)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v",
				session.UserID, err)
			if errors.Is(err, createBooking.ErrInternal) {
				handlers.RespondError(w, http.StatusBadGateway, msgUpstreamUnavailable)
				return
			}
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d",
		result.BookingID, session.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
