package create_booking

import (
	"github.com/layananku/LSP-BookingGateway/internal/domain"
)

// Имена полей в ValidationError соответствуют полям канонической записи
const (
	fieldServiceCategory = "serviceCategory"
	fieldProviderRef     = "providerReferenceId"
	fieldItemRef         = "itemReferenceId"
	fieldScheduledTime   = "scheduledTime"
	fieldDurationMinutes = "durationMinutes"
)

// validateBooking проверяет наличие обязательных полей канонической записи
// Проверки чисто структурные: существование врача, автосервиса или услуги
// в каталоге проверяет core backend, не этот слой
func validateBooking(booking *domain.Booking) error {
	if !booking.ServiceCategory.IsValid() {
		return &ValidationError{Fields: []string{fieldServiceCategory}}
	}

	var missing []string

	switch booking.ServiceCategory {
	case domain.CategoryPsychology:
		if booking.ProviderReferenceID == nil {
			missing = append(missing, fieldProviderRef)
		}
		if booking.ScheduledTime.IsZero() {
			missing = append(missing, fieldScheduledTime)
		}
		if booking.DurationMinutes == nil || *booking.DurationMinutes <= 0 {
			missing = append(missing, fieldDurationMinutes)
		}

	case domain.CategoryWorkshop:
		// Запись в автосервис без конкретного продукта допустима,
		// обязателен только сам автосервис
		if booking.ProviderReferenceID == nil {
			missing = append(missing, fieldProviderRef)
		}

	case domain.CategoryDailyService:
		if booking.ItemReferenceID == nil {
			missing = append(missing, fieldItemRef)
		}
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	return nil
}
